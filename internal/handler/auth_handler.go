package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"therapycare-api/internal/auth"
	"therapycare-api/internal/model"
)

type RegisterRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token        string              `json:"token"`
	Practitioner model.PublicProfile `json:"practitioner"`
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Specialty == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields required")
	}
	if len(req.Password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	if _, err := h.store.PractitionerByEmail(c.Request().Context(), strings.ToLower(req.Email)); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	p := &model.Practitioner{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Specialty:    req.Specialty,
		Phone:        req.Phone,
		Schedule:     "Lun-Ven 9h-18h",
	}

	if err := h.store.CreatePractitioner(c.Request().Context(), p); err != nil {
		// unique violation on email under a register race
		return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	tok, err := auth.MakeToken(p.ID, h.secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h.log.Info().Str("practitioner_id", p.ID).Msg("practitioner registered")
	return c.JSON(http.StatusOK, TokenResponse{Token: tok, Practitioner: p.Public()})
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	p, err := h.store.PractitionerByEmail(c.Request().Context(), strings.ToLower(req.Email))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !auth.CheckPassword(p.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	tok, err := auth.MakeToken(p.ID, h.secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: tok, Practitioner: p.Public()})
}
