package api

import (
	"errors"
	"net/http"

	"projector-reservation/internal/domain/reservation"
	reqdto "projector-reservation/internal/handler/dto/request"
	"projector-reservation/internal/handler/middleware"
	"projector-reservation/internal/usecase/commands"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a projector for one or more slots on a day
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), commands.CreateReservationParams{
		Date:  req.Date,
		Slots: req.Slots,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrSelfConflict):
			var conflict *reservation.SelfConflictError
			resp := gin.H{"error": "You already have a reservation overlapping the requested slots"}
			if errors.As(err, &conflict) {
				resp["conflictingSlots"] = conflict.Slots
			}
			c.JSON(http.StatusConflict, resp)
		case errors.Is(err, commands.ErrNoProjectorAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No single projector is free for all requested slots; try reserving the slots separately",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List own reservations
// @Description Reservations of the authenticated user from a date onward (default today)
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param from query string false "Start day in YYYY-MM-DD"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.reservationQueries.ListUserReservations(c.Request.Context(), userID, q.From)
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

// @Summary Cancel reservation
// @Description Cancel an own reservation; admins may cancel any
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	if err := h.reservationCommands.CancelReservation(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You may only cancel your own reservations",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
