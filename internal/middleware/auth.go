package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/auth"
)

// BearerAuth returns an Echo middleware that resolves the bearer token on
// protected routes against the in-process token registry.  The header must
// carry the literal "Bearer " prefix; the remainder is passed verbatim to
// the registry.  A missing header, a wrong prefix and an unknown token all
// collapse into the same 401 response so callers cannot distinguish them.
// On success the resolved user id is stored in the context under "user_id".
func BearerAuth(registry *auth.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			token := strings.TrimPrefix(header, "Bearer ")
			userID, ok := registry.Validate(token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
