package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/supportbot/internal/repository"
)

// GetSession returns the full history of a session.
// GET /sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	history, err := h.service.SessionHistory(ctx, c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, history)
}

// ListSessions returns known session ids.
// GET /sessions
func (h *Handler) ListSessions(c echo.Context) error {
	limit := repository.DefaultSessionListLimit
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	ctx := c.Request().Context()

	list, err := h.service.ListSessions(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, list)
}
