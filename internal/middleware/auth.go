package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"therapycare-api/internal/auth"
)

// PractitionerIDKey is the echo context key the auth middleware sets
// for downstream handlers.
const PractitionerIDKey = "practitioner_id"

// RequireAuth parses the Authorization: Bearer <jwt> header and stores
// the practitioner id on the context. Missing or bad tokens get 401.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == c.Request().Header.Get("Authorization") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PractitionerIDKey, claims.PractitionerID)
			return next(c)
		}
	}
}

// PractitionerID reads the id the auth middleware stored.
func PractitionerID(c echo.Context) string {
	id, _ := c.Get(PractitionerIDKey).(string)
	return id
}
