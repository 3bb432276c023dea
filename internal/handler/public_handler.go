package handler

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"therapycare-api/internal/model"
	"therapycare-api/internal/taxonomy"
)

func (h *Handler) SearchPractitioners(c echo.Context) error {
	practitioners, err := h.store.SearchPractitioners(c.Request().Context(),
		c.QueryParam("specialty"), c.QueryParam("city"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	out := make([]model.PublicProfile, 0, len(practitioners))
	for i := range practitioners {
		out = append(out, practitioners[i].Public())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) PublicProfile(c echo.Context) error {
	p, err := h.store.PractitionerByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "practitioner not found")
	}
	return c.JSON(http.StatusOK, p.Public())
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, taxonomy.Categories())
}

func (h *Handler) GetCategory(c echo.Context) error {
	cat, ok := taxonomy.CategoryBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *Handler) GetSpecialty(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		name = c.Param("name")
	}
	sp, ok := taxonomy.SpecialtyByName(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "specialty not found")
	}
	return c.JSON(http.StatusOK, sp)
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and message required")
	}

	m := &model.ContactMessage{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.store.CreateContactMessage(c.Request().Context(), m); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Message received successfully",
		"id":      m.ID,
	})
}
