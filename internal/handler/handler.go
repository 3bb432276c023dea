package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"therapycare-api/internal/middleware"
	"therapycare-api/internal/model"
)

// Store is what the handlers need from the persistence layer.
// *store.Store implements it; tests plug in map-backed mocks.
type Store interface {
	CreatePractitioner(ctx context.Context, p *model.Practitioner) error
	PractitionerByEmail(ctx context.Context, email string) (*model.Practitioner, error)
	PractitionerByID(ctx context.Context, id string) (*model.Practitioner, error)
	UpdatePractitioner(ctx context.Context, id string, upd model.PractitionerUpdate) (*model.Practitioner, error)
	SearchPractitioners(ctx context.Context, specialty, city string) ([]model.Practitioner, error)

	CreatePatient(ctx context.Context, p *model.Patient) error
	ListPatients(ctx context.Context, practitionerID string) ([]model.Patient, error)
	PatientByID(ctx context.Context, practitionerID, id string) (*model.Patient, error)
	UpdatePatient(ctx context.Context, practitionerID, id string, upd model.PatientUpdate) (*model.Patient, error)
	DeletePatient(ctx context.Context, practitionerID, id string) error

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context, practitionerID string) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, practitionerID, id string) error

	CreateContactMessage(ctx context.Context, m *model.ContactMessage) error
	Stats(ctx context.Context, practitionerID string, now time.Time) (*model.Stats, error)
}

type Handler struct {
	store  Store
	secret string
	log    zerolog.Logger
}

func New(st Store, secret string, log zerolog.Logger) *Handler {
	return &Handler{store: st, secret: secret, log: log}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, rl *middleware.RateLimiter) {
	api := e.Group("/api")

	authGroup := api.Group("/auth", middleware.RateLimit(rl))
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	api.GET("/public/practitioners", h.SearchPractitioners)
	api.GET("/public/practitioner/:id", h.PublicProfile)
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:slug", h.GetCategory)
	api.GET("/specialties/:name", h.GetSpecialty)
	api.POST("/contact", h.SubmitContact)

	priv := api.Group("", middleware.RequireAuth(h.secret))
	priv.GET("/practitioner/profile", h.GetProfile)
	priv.PUT("/practitioner/profile", h.UpdateProfile)
	priv.GET("/patients", h.ListPatients)
	priv.POST("/patients", h.CreatePatient)
	priv.PUT("/patients/:id", h.UpdatePatient)
	priv.DELETE("/patients/:id", h.DeletePatient)
	priv.GET("/appointments", h.ListAppointments)
	priv.POST("/appointments", h.CreateAppointment)
	priv.DELETE("/appointments/:id", h.DeleteAppointment)
	priv.GET("/stats", h.GetStats)
}

func practitionerID(c echo.Context) string {
	return middleware.PractitionerID(c)
}
