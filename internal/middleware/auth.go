package middleware

import (
	"net/http"
	"strings"

	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/pkg/token"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userId"

// AuthenticateToken validates the bearer JWT and requires a live session row
// for it. The resolved user id is attached to the request context; handlers
// read it with UserID and pass it to services explicitly.
func AuthenticateToken(secret string, sessions repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := token.ParseUserID(secret, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if _, err := sessions.FindByToken(c.Request().Context(), raw); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session not found")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id attached by AuthenticateToken.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}
