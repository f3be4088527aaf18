package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/gamecho/gamecho-backend/internal/config"
	"github.com/gamecho/gamecho-backend/internal/database"
	"github.com/gamecho/gamecho-backend/internal/handler"
	"github.com/gamecho/gamecho-backend/internal/middleware"
	"github.com/gamecho/gamecho-backend/internal/queue"
	"github.com/gamecho/gamecho-backend/internal/repository"
	"github.com/gamecho/gamecho-backend/internal/router"
	"github.com/gamecho/gamecho-backend/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	// Repositories and services.
	users := repository.NewUserRepo(db)
	games := repository.NewGameRepo(db)
	ratings := repository.NewRatingRepo(db)
	creds := service.NewCredentialService(users, cfg.BcryptCost)
	accounts := service.NewAccountService(users)

	// Handlers.
	userH := handler.NewUserHandler(creds, accounts, cfg.Events)
	gameH := handler.NewGameHandler(games)
	ratingH := handler.NewRatingHandler(ratings, users, games)
	profileH := handler.NewProfileHandler(creds, ratings)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	if cfg.CORSOrigin != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.CORSOrigin},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}

	// Redis is optional; when unreachable both the limiter and the cache
	// become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	authMW := middleware.TokenAuth(creds)

	router.RegisterRoutes(e)
	router.RegisterUsers(e, userH, rateMW)
	router.RegisterGames(e, gameH, ratingH, authMW, cacheMW)
	router.RegisterProfile(e, profileH)

	if cfg.Events {
		go queue.StartAccountConsumer()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
