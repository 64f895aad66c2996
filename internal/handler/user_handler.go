package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nc-news-api/internal/response"
	"nc-news-api/internal/service"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} map[string][]domain.User
// @Failure      500 {object} response.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "users", users)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} map[string]domain.User
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "user", user)
}
