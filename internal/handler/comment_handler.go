package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/dto"
	"nc-news-api/internal/response"
	"nc-news-api/internal/service"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new instance of CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// GetComments godoc
// @Summary      List an article's comments
// @Description  Newest first. An existing article without comments gives an empty list.
// @Tags         comments
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Success      200 {object} map[string][]domain.Comment
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /articles/{article_id}/comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "comments", comments)
}

// PostComment godoc
// @Summary      Add a comment to an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Param        request body dto.CreateCommentRequest true "Comment"
// @Success      201 {object} map[string]domain.Comment
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /articles/{article_id}/comments [post]
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequestBody(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "comment", comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Param        comment_id path int true "Comment ID"
// @Success      204
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
