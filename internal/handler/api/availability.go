package api

import (
	"errors"
	"net/http"

	reqdto "projector-reservation/internal/handler/dto/request"
	"projector-reservation/internal/handler/middleware"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Day availability
// @Description Per-slot projector availability for a given day
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param date query string true "Day in YYYY-MM-DD"
// @Param details query bool false "Include who reserved each slot"
// @Success 200 {array} queries.SlotAvailabilityView
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.availabilityQueries.DayAvailability(c.Request.Context(), userID, q.Date, q.Details)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}
