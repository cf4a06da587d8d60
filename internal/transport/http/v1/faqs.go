package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListFAQs returns the loaded FAQ set.
// GET /faqs
func (h *Handler) ListFAQs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.FAQs())
}
