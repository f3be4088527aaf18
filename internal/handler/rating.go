package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/repository"
)

// RatingHandler serves game ratings. Submitting a rating requires a valid
// session token; reads are public.
type RatingHandler struct {
	Ratings *repository.RatingRepo
	Users   *repository.UserRepo
	Games   *repository.GameRepo
}

func NewRatingHandler(ratings *repository.RatingRepo, users *repository.UserRepo, games *repository.GameRepo) *RatingHandler {
	return &RatingHandler{Ratings: ratings, Users: users, Games: games}
}

type createRatingReq struct {
	GameID uint64 `json:"gameId"`
	Score  int    `json:"score"`
	Review string `json:"review"`
}

type ratingView struct {
	GameID uint64 `json:"gameId"`
	UserID uint64 `json:"userId"`
	Score  int    `json:"score"`
	Review string `json:"review"`
}

// Create stores (or overwrites) the caller's rating for a game.
func (h *RatingHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint64)
	if !ok || userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"result": false, "error": "User not found"})
	}

	var req createRatingReq
	if err := c.Bind(&req); err != nil || req.GameID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Missing or empty fields"})
	}
	if req.Score < 0 || req.Score > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Score must be between 0 and 100"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Games.GetByID(ctx, req.GameID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "error": "Game not found"})
		}
		return failJSON(c, err)
	}

	err := h.Ratings.Upsert(ctx, model.Rating{
		UserID: userID,
		GameID: req.GameID,
		Score:  req.Score,
		Review: req.Review,
	})
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "message": "Rating saved successfully"})
}

// ListByGame returns a game's ratings with their average score.
func (h *RatingHandler) ListByGame(c echo.Context) error {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Invalid game id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ratings, err := h.Ratings.ListByGame(ctx, gameID)
	if err != nil {
		return failJSON(c, err)
	}
	avg, n, err := h.Ratings.AverageForGame(ctx, gameID)
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  true,
		"ratings": toRatingViews(ratings),
		"average": avg,
		"count":   n,
	})
}

// ListByUser returns every rating a user has submitted, keyed by username.
func (h *RatingHandler) ListByUser(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "error": "User not found"})
		}
		return failJSON(c, err)
	}

	ratings, err := h.Ratings.ListByUser(ctx, u.ID)
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "ratings": toRatingViews(ratings)})
}

func toRatingViews(ratings []model.Rating) []ratingView {
	views := make([]ratingView, 0, len(ratings))
	for _, rt := range ratings {
		views = append(views, ratingView{
			GameID: rt.GameID,
			UserID: rt.UserID,
			Score:  rt.Score,
			Review: rt.Review,
		})
	}
	return views
}
