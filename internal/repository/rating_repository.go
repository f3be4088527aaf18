package repository

import (
	"context"
	"database/sql"

	"github.com/gamecho/gamecho-backend/internal/model"
)

type RatingRepo struct{ DB *sql.DB }

func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{DB: db} }

const ratingColumns = "id,user_id,game_id,score,review,created_at"

// Upsert stores a rating, overwriting any previous rating the user gave
// the same game (UNIQUE user_id+game_id).
func (r *RatingRepo) Upsert(ctx context.Context, rt model.Rating) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO ratings (user_id, game_id, score, review) VALUES (?,?,?,?) "+
			"ON DUPLICATE KEY UPDATE score=VALUES(score), review=VALUES(review)",
		rt.UserID, rt.GameID, rt.Score, rt.Review)
	return err
}

// ListByGame returns all ratings for a game, newest first.
func (r *RatingRepo) ListByGame(ctx context.Context, gameID uint64) ([]model.Rating, error) {
	return r.list(ctx,
		"SELECT "+ratingColumns+" FROM ratings WHERE game_id=? ORDER BY created_at DESC", gameID)
}

// ListByUser returns all ratings a user has submitted, newest first.
func (r *RatingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Rating, error) {
	return r.list(ctx,
		"SELECT "+ratingColumns+" FROM ratings WHERE user_id=? ORDER BY created_at DESC", userID)
}

func (r *RatingRepo) list(ctx context.Context, query string, arg uint64) ([]model.Rating, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]model.Rating, 0)
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.GameID, &rt.Score, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// AverageForGame returns the mean score for a game and the rating count.
// A game with no ratings yields (0, 0, nil).
func (r *RatingRepo) AverageForGame(ctx context.Context, gameID uint64) (float64, int, error) {
	var (
		avg sql.NullFloat64
		n   int
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT AVG(score), COUNT(*) FROM ratings WHERE game_id=?",
		gameID).Scan(&avg, &n)
	if err != nil {
		return 0, 0, err
	}
	return avg.Float64, n, nil
}
