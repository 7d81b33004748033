package http

import (
	"net/http"
	"strings"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	"github.com/ChristianKamdemLab/ckmoney/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	loans domain.Repository
	agg   *dashboard.Usecase
}

func NewDashboardHandler(loans domain.Repository, agg *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{loans: loans, agg: agg}
}

// Summary reports outstanding vs recovered principal across the
// participant's portfolio, in the reporting currency.
func (h *DashboardHandler) Summary(c echo.Context) error {
	participant := strings.ToLower(strings.TrimSpace(c.QueryParam("participant")))
	if participant == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Details: []FieldError{{Field: "participant", Message: "is required"}}})
	}

	loans, err := h.loans.ListByParticipant(c.Request().Context(), participant)
	if err != nil {
		return respondErr(c, err)
	}
	totals, err := h.agg.Aggregate(c.Request().Context(), loans)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, totals)
}
