package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/handler"
)

// RegisterUsers mounts the account surface under /users. The paths, bodies
// and error messages here are a compatibility contract with existing
// clients; do not rename them. authMW (typically the rate limiter) guards
// only signup and signin, where credential guessing and bulk registration
// happen; the rest of the surface stays unthrottled.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler, authMW ...echo.MiddlewareFunc) {
	g := e.Group("/users")

	g.POST("/signup", h.Signup, authMW...)
	g.POST("/signin", h.Signin, authMW...)
	// Token lookup and deletion address users by path parameter. The fixed
	// update-* paths are registered as PUT so they cannot collide with the
	// GET token parameter route.
	g.GET("/:token", h.GetByToken)
	g.PUT("/update-username", h.UpdateUsername)
	g.PUT("/update-email", h.UpdateEmail)
	g.DELETE("/:username", h.Delete)
}
