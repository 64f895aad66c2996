package dto

import "encoding/json"

// UpdateVotesRequest represents the request to adjust an article's votes.
// IncVotes stays raw so a missing value and a non-numeric value can be told apart.
type UpdateVotesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes" swaggertype:"integer" example:"1"`
}

// ListArticlesQuery holds the optional query string of GET /articles
type ListArticlesQuery struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
}
