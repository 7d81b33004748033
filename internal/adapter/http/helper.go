package http

import (
	"errors"
	"net/http"
	"strings"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	notifDomain "github.com/ChristianKamdemLab/ckmoney/internal/domain/notification"

	"github.com/labstack/echo/v4"
)

// actorEmail extracts the acting identity set by the (external) auth layer.
func actorEmail(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Email")))
}

// respondErr translates domain errors into the HTTP error payload.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, notifDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrNotAuthorized), errors.Is(err, notifDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrTransitionViolation):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
