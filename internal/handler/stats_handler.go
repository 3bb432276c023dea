package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetStats(c echo.Context) error {
	st, err := h.store.Stats(c.Request().Context(), practitionerID(c), time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, st)
}
