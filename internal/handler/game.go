package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/repository"
)

// GameHandler serves the games catalogue. Reads are public (and cacheable);
// writes sit behind the token-auth middleware.
type GameHandler struct {
	Games *repository.GameRepo
}

func NewGameHandler(games *repository.GameRepo) *GameHandler {
	return &GameHandler{Games: games}
}

type createGameReq struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

type gameView struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

func toGameView(g model.Game) gameView {
	return gameView{
		ID:          g.ID,
		Title:       g.Title,
		Genre:       g.Genre,
		ReleaseYear: g.ReleaseYear,
		Description: g.Description,
		CoverURL:    g.CoverURL,
	}
}

// List returns the catalogue window selected by ?limit and ?offset.
func (h *GameHandler) List(c echo.Context) error {
	limit := intQuery(c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	games, err := h.Games.List(ctx, limit, offset)
	if err != nil {
		return failJSON(c, err)
	}
	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, toGameView(g))
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "games": views})
}

// Get returns a single game by id.
func (h *GameHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Invalid game id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Games.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"result": false, "error": "Game not found"})
	}
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "game": toGameView(g)})
}

// Create adds a game to the catalogue. Requires a valid session token.
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameReq
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Missing or empty fields"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Games.Create(ctx, model.Game{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "id": id})
}

// Delete removes a game. Requires a valid session token.
func (h *GameHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "error": "Invalid game id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Games.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "error": "Game not found"})
		}
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "message": "Game deleted successfully"})
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
