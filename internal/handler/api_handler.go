package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/response"
)

const welcomeMessage = "Welcome to the API! Visit /api for documentation"

// EndpointsFunc returns the endpoint descriptions served at the API root
type EndpointsFunc func() (map[string]json.RawMessage, error)

// APIHandler serves the welcome message and the endpoint listing
type APIHandler struct {
	endpoints EndpointsFunc
}

// NewAPIHandler creates a new instance of APIHandler
func NewAPIHandler(endpoints EndpointsFunc) *APIHandler {
	return &APIHandler{endpoints: endpoints}
}

// Welcome godoc
// @Summary      Welcome message
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (h *APIHandler) Welcome(c *gin.Context) {
	response.SendMessage(c, http.StatusOK, welcomeMessage)
}

// GetEndpoints godoc
// @Summary      Describe every endpoint
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} response.ErrorResponse
// @Router       /api [get]
func (h *APIHandler) GetEndpoints(c *gin.Context) {
	endpoints, err := h.endpoints()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "endpoints", endpoints)
}
