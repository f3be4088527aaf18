package model

import "time"

// Rating mirrors the `ratings` table. A user rates a game at most once;
// re-rating overwrites the existing row (UNIQUE user_id+game_id).
// Score is a 0..100 percentile, criticker style.
type Rating struct {
	ID        uint64    // ratings.id
	UserID    uint64    // ratings.user_id
	GameID    uint64    // ratings.game_id
	Score     int       // ratings.score
	Review    string    // ratings.review
	CreatedAt time.Time // ratings.created_at
}
