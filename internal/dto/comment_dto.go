package dto

// CreateCommentRequest represents the request to post a comment on an article
// @Description Both username and body are required and must be non-empty
type CreateCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body" example:"What a great article"`
}
