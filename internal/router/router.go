package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/handler"
)

// RegisterRoutes registers routes that belong to no particular feature
// area. Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}
