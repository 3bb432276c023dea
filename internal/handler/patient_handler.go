package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"therapycare-api/internal/model"
	"therapycare-api/internal/store"
)

type PatientCreateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.store.ListPatients(c.Request().Context(), practitionerID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if patients == nil {
		patients = []model.Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req PatientCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full_name, email and phone required")
	}

	p := &model.Patient{
		ID:             uuid.New().String(),
		PractitionerID: practitionerID(c),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Notes:          req.Notes,
	}

	if err := h.store.CreatePatient(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var upd model.PatientUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	p, err := h.store.UpdatePatient(c.Request().Context(), practitionerID(c), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	err := h.store.DeletePatient(c.Request().Context(), practitionerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted"})
}
