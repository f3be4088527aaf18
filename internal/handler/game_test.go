package handler

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamecho/gamecho-backend/internal/repository"
)

func setupGameServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	h := NewGameHandler(repository.NewGameRepo(db))
	e := echo.New()
	e.GET("/games/:id", h.Get)
	e.DELETE("/games/:id", h.Delete)
	return e, mock, func() { db.Close() }
}

func TestGameGet_NotFound(t *testing.T) {
	e, mock, cleanup := setupGameServer(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id,title,genre,release_year,description,cover_url,created_at FROM games WHERE id=? LIMIT 1")).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "release_year", "description", "cover_url", "created_at"}))

	rec, out := doJSON(t, e, http.MethodGet, "/games/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, out["result"])
	assert.Equal(t, "Game not found", out["error"])
}

func TestGameDelete_NotFound(t *testing.T) {
	e, mock, cleanup := setupGameServer(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games WHERE id=?")).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec, out := doJSON(t, e, http.MethodDelete, "/games/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Game not found", out["error"])
}

func TestGameGet_BadID(t *testing.T) {
	e, _, cleanup := setupGameServer(t)
	defer cleanup()

	rec, out := doJSON(t, e, http.MethodGet, "/games/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid game id", out["error"])
}

func TestGameGet_Success(t *testing.T) {
	e, mock, cleanup := setupGameServer(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "genre", "release_year", "description", "cover_url", "created_at"}).
		AddRow(1, "Outer Wilds", "Adventure", 2019, "time loop", "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id,title,genre,release_year,description,cover_url,created_at FROM games WHERE id=? LIMIT 1")).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	rec, out := doJSON(t, e, http.MethodGet, "/games/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["result"])
	game, ok := out["game"].(map[string]any)
	require.True(t, ok, "game object missing")
	assert.Equal(t, "Outer Wilds", game["title"])
}
