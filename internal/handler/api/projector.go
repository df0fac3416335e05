package api

import (
	"errors"
	"net/http"

	reqdto "projector-reservation/internal/handler/dto/request"
	resdto "projector-reservation/internal/handler/dto/response"
	"projector-reservation/internal/usecase/commands"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectorHandler struct {
	projectorCommands commands.ProjectorCommands
	projectorQueries  queries.ProjectorQueries
}

func NewProjectorHandler(
	projectorCommands commands.ProjectorCommands,
	projectorQueries queries.ProjectorQueries,
) *ProjectorHandler {
	return &ProjectorHandler{
		projectorCommands: projectorCommands,
		projectorQueries:  projectorQueries,
	}
}

// @Summary List projectors
// @Tags projectors
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ProjectorView
// @Router /projectors [get]
func (h *ProjectorHandler) ListProjectors(c *gin.Context) {
	views, err := h.projectorQueries.ListProjectors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create projector
// @Tags projectors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProjectorRequest true "Projector"
// @Success 201 {object} queries.ProjectorView
// @Failure 400 {object} map[string]string
// @Router /projectors [post]
func (h *ProjectorHandler) CreateProjector(c *gin.Context) {
	var req reqdto.CreateProjectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.projectorCommands.CreateProjector(c.Request.Context(), commands.CreateProjectorParams{
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Projector name is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ProjectorViewFrom(entity))
}

// @Summary Update projector
// @Tags projectors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Projector ID"
// @Param request body reqdto.UpdateProjectorRequest true "Fields to update"
// @Success 200 {object} queries.ProjectorView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projectors/{id} [patch]
func (h *ProjectorHandler) UpdateProjector(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid projector ID",
		})
		return
	}

	var req reqdto.UpdateProjectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.projectorCommands.UpdateProjector(c.Request.Context(), id, commands.UpdateProjectorParams{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProjectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Projector not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ProjectorViewFrom(entity))
}

// @Summary Delete projector
// @Tags projectors
// @Security BearerAuth
// @Param id path string true "Projector ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projectors/{id} [delete]
func (h *ProjectorHandler) DeleteProjector(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid projector ID",
		})
		return
	}

	if err := h.projectorCommands.DeleteProjector(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrProjectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Projector not found",
			})
		case errors.Is(err, commands.ErrProjectorInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Projector has reservations; mark it unavailable instead",
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

// @Summary Seed initial projectors
// @Description Create the initial projector inventory; refuses when projectors already exist
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 201 {array} queries.ProjectorView
// @Failure 409 {object} map[string]string
// @Router /admin/seed [post]
func (h *ProjectorHandler) SeedProjectors(c *gin.Context) {
	seeded, err := h.projectorCommands.SeedProjectors(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadySeeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Projector inventory is not empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ProjectorViewsFrom(seeded))
}
