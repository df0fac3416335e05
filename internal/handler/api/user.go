package api

import (
	"errors"
	"net/http"

	reqdto "projector-reservation/internal/handler/dto/request"
	"projector-reservation/internal/handler/middleware"
	"projector-reservation/internal/usecase/commands"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Update profile
// @Description Update the authenticated user's name and area
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile update"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.authCommands.UpdateProfile(c.Request.Context(), userID, commands.UpdateProfileParams{
		Name: req.Name,
		Area: req.Area,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.userQueries.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List users
// @Description List all registered users, sorted by name
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.userQueries.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
