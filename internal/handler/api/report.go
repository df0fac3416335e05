package api

import (
	"errors"
	"net/http"

	reqdto "projector-reservation/internal/handler/dto/request"
	"projector-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Usage report
// @Description Reservations in an inclusive date range, filtered by area and professor name
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param startDate query string true "Range start in YYYY-MM-DD"
// @Param endDate query string true "Range end in YYYY-MM-DD"
// @Param area query string false "Exact area match"
// @Param professorName query string false "Case-insensitive name substring"
// @Success 200 {array} queries.ReportRecord
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate and endDate query parameters are required",
		})
		return
	}

	filter := queries.ReportFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}
	if q.Area != "" {
		filter.Area = &q.Area
	}
	if q.ProfessorName != "" {
		filter.ProfessorName = &q.ProfessorName
	}

	records, err := h.reportQueries.UsageReport(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range, expected YYYY-MM-DD with startDate <= endDate",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, records)
}
