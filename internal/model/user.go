package model

import "time"

// User represents an account record as stored in the `users` table.
// PasswordHash holds only the bcrypt digest of the secret; the plaintext
// password never reaches this struct. Token is the opaque bearer credential
// issued at signup and replaced on every successful signin, so the
// last-issued value is the only one that resolves.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name, mutable via account update.
//  Email        – unique email address, mutable via account update.
//  PasswordHash – bcrypt hashed password.
//  Token        – current session token (hex string).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Token        string    // users.token
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
