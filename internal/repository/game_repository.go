package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gamecho/gamecho-backend/internal/model"
)

type GameRepo struct{ DB *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{DB: db} }

const gameColumns = "id,title,genre,release_year,description,cover_url,created_at"

// Create inserts a game and returns its ID.
func (r *GameRepo) Create(ctx context.Context, g model.Game) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO games (title, genre, release_year, description, cover_url) VALUES (?,?,?,?,?)",
		g.Title, g.Genre, g.ReleaseYear, g.Description, g.CoverURL)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single game.
func (r *GameRepo) GetByID(ctx context.Context, id uint64) (model.Game, error) {
	var g model.Game
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+gameColumns+" FROM games WHERE id=? LIMIT 1",
		id).Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseYear, &g.Description, &g.CoverURL, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Game{}, ErrNotFound
	}
	return g, err
}

// List returns games ordered by title, windowed by limit/offset.
func (r *GameRepo) List(ctx context.Context, limit, offset int) ([]model.Game, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+gameColumns+" FROM games ORDER BY title LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseYear, &g.Description, &g.CoverURL, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// Delete removes a game. Ratings cascade at the schema level.
func (r *GameRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM games WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
