package http

import (
	"net/http"
	"strings"
	"time"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	notifuc "github.com/ChristianKamdemLab/ckmoney/internal/usecase/notification"
	"github.com/ChristianKamdemLab/ckmoney/internal/usecase/reminder"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	loans  domain.Repository
	uc     *notifuc.Usecase
	engine *reminder.Engine
}

func NewNotificationHandler(loans domain.Repository, uc *notifuc.Usecase, engine *reminder.Engine) *NotificationHandler {
	return &NotificationHandler{loans: loans, uc: uc, engine: engine}
}

// Refresh runs the reminder rules for the acting user's active borrowings.
// Called at session start and on loan-list refresh; the cooldown dedup
// makes repeated calls safe.
func (h *NotificationHandler) Refresh(c echo.Context) error {
	actor := actorEmail(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing Ax-Actor-Email"})
	}

	loans, err := h.loans.ListActiveByBorrower(c.Request().Context(), actor)
	if err != nil {
		return respondErr(c, err)
	}
	created := h.engine.Evaluate(c.Request().Context(), loans, actor, time.Now().UTC())
	return c.JSON(http.StatusOK, map[string]any{
		"evaluated": len(loans),
		"created":   created,
	})
}

func (h *NotificationHandler) List(c echo.Context) error {
	user := strings.ToLower(strings.TrimSpace(c.QueryParam("user")))
	if user == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Details: []FieldError{{Field: "user", Message: "is required"}}})
	}
	notifs, err := h.uc.List(c.Request().Context(), user)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, notifs)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor := actorEmail(c)
	if actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing Ax-Actor-Email"})
	}
	if err := h.uc.MarkRead(c.Request().Context(), c.Param("notification_id"), actor); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
