package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare-api/internal/model"
)

func (h *Handler) GetProfile(c echo.Context) error {
	p, err := h.store.PractitionerByID(c.Request().Context(), practitionerID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var upd model.PractitionerUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	p, err := h.store.UpdatePractitioner(c.Request().Context(), practitionerID(c), upd)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, p)
}
