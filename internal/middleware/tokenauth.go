package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/model"
)

// TokenResolver resolves a bearer session token back to its user record.
// The credential service satisfies this.
type TokenResolver interface {
	ResolveByToken(ctx context.Context, token string) (model.User, error)
}

// TokenAuth returns an Echo middleware that validates a Bearer session
// token against the user store and injects the resolved identity into the
// request context. Unlike a signed token, the session token carries no
// claims of its own: the lookup is the validation. Handlers behind this
// middleware read `c.Get("user_id")` (uint64) and `c.Get("username")`.
func TokenAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"result": false, "error": "Missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := resolver.ResolveByToken(ctx, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"result": false, "error": "User not found"})
			}

			c.Set("user_id", u.ID)
			c.Set("username", u.Username)
			return next(c)
		}
	}
}
