package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/handler"
)

// RegisterGames mounts the catalogue and ratings surface. Browse endpoints
// are public; cacheMW (the Redis response cache, or nil) wraps only the
// read side, and authMW (token auth) guards the write side.
func RegisterGames(e *echo.Echo, games *handler.GameHandler, ratings *handler.RatingHandler, authMW, cacheMW echo.MiddlewareFunc) {
	browse := e.Group("/games")
	if cacheMW != nil {
		browse.Use(cacheMW)
	}
	browse.GET("", games.List)
	browse.GET("/:id", games.Get)

	write := e.Group("/games", authMW)
	write.POST("", games.Create)
	write.DELETE("/:id", games.Delete)

	e.GET("/ratings/game/:id", ratings.ListByGame)
	e.GET("/ratings/user/:username", ratings.ListByUser)
	e.POST("/ratings", ratings.Create, authMW)
}

// RegisterProfile mounts the profile view, addressed by session token like
// the users lookup.
func RegisterProfile(e *echo.Echo, p *handler.ProfileHandler) {
	e.GET("/profile/:token", p.Get)
}
