package model

import "time"

// Game mirrors the `games` table. Cover art is referenced by URL; the file
// itself lives outside this service.
type Game struct {
	ID          uint64    // games.id
	Title       string    // games.title
	Genre       string    // games.genre
	ReleaseYear int       // games.release_year
	Description string    // games.description
	CoverURL    string    // games.cover_url
	CreatedAt   time.Time // games.created_at
}
