package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"therapycare-api/internal/model"
	"therapycare-api/internal/store"
)

type AppointmentCreateRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
}

func (h *Handler) ListAppointments(c echo.Context) error {
	appts, err := h.store.ListAppointments(c.Request().Context(), practitionerID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req AppointmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.PatientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id required")
	}
	if req.Date == "" || req.Time == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and time required")
	}
	if req.Duration == 0 {
		req.Duration = 60
	}
	if req.Duration < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "duration must be positive")
	}

	// The agenda form sends the denormalized name it resolved from the
	// patient list; fall back to a lookup when a bare id arrives.
	if req.PatientName == "" {
		p, err := h.store.PatientByID(c.Request().Context(), practitionerID(c), req.PatientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown patient")
		}
		req.PatientName = p.FullName
	}

	// No overlap check: conflicting slots are accepted, practitioners
	// manage double bookings themselves.
	a := &model.Appointment{
		ID:             uuid.New().String(),
		PractitionerID: practitionerID(c),
		PatientID:      req.PatientID,
		PatientName:    req.PatientName,
		Date:           req.Date,
		Time:           req.Time,
		Duration:       req.Duration,
		Notes:          req.Notes,
	}

	if err := h.store.CreateAppointment(c.Request().Context(), a); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h.log.Info().Str("appointment_id", a.ID).Str("date", a.Date).Str("time", a.Time).
		Msg("appointment created")
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	err := h.store.DeleteAppointment(c.Request().Context(), practitionerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Appointment deleted"})
}
