package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/response"
	"nc-news-api/internal/service"
)

// TopicHandler handles HTTP requests for topics
type TopicHandler struct {
	topicService service.TopicService
}

// NewTopicHandler creates a new instance of TopicHandler
func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// GetTopics godoc
// @Summary      List topics
// @Description  Returns every topic
// @Tags         topics
// @Produce      json
// @Success      200 {object} map[string][]domain.Topic
// @Failure      500 {object} response.ErrorResponse
// @Router       /topics [get]
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.topicService.ListTopics(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "topics", topics)
}
