package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/response"
)

// handleServiceError maps service layer errors to HTTP responses.
// The error is attached to the gin context so the request logger records it.
func handleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, response.MsgInternal)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeMalformedID,
		response.ErrCodeMissingFields,
		response.ErrCodeMissingIncrement,
		response.ErrCodeInvalidIncrement,
		response.ErrCodeVotesOutOfRange,
		response.ErrCodeInvalidSortColumn,
		response.ErrCodeInvalidOrder,
		response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeNotFound, response.ErrCodeRouteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// badRequestBody rejects a body that is not valid JSON for the target shape
func badRequestBody(c *gin.Context, err error) {
	_ = c.Error(err)
	response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, response.MsgMalformedID)
}

// RouteNotFound answers every request that matched no route
func RouteNotFound(c *gin.Context) {
	response.SendError(c, http.StatusNotFound, response.ErrCodeRouteNotFound, response.MsgRouteNotFound)
}
