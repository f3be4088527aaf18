package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gamecho/gamecho-backend/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,username,email,password_hash,token,created_at,updated_at"

// isDuplicate reports whether err is a MySQL duplicate-key error (1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// Create inserts a new user and returns its ID. The caller supplies an
// already-hashed password and a freshly issued token.
func (r *UserRepo) Create(ctx context.Context, u model.User) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, token) VALUES (?,?,?,?)",
		u.Username, u.Email, u.PasswordHash, u.Token)
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

// ExistsByUsernameOrEmail reports whether any user holds the given username
// or email. Best-effort pre-check; the UNIQUE indexes are the backstop.
func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username=? OR email=?",
		username, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getBy(ctx, "username", username)
}

// GetByToken fetches the user currently holding the given session token.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (model.User, error) {
	return r.getBy(ctx, "token", token)
}

func (r *UserRepo) getBy(ctx context.Context, column, value string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+column+"=? LIMIT 1",
		value).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Token, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// UpdateToken overwrites the stored session token for username.
func (r *UserRepo) UpdateToken(ctx context.Context, username, token string) error {
	return r.updateField(ctx, "token", "username", username, token)
}

// UpdateUsername renames the user currently known as current.
func (r *UserRepo) UpdateUsername(ctx context.Context, current, next string) error {
	return r.updateField(ctx, "username", "username", current, next)
}

// UpdateEmail changes the email of the user currently holding current.
func (r *UserRepo) UpdateEmail(ctx context.Context, current, next string) error {
	return r.updateField(ctx, "email", "email", current, next)
}

// updateField treats zero affected rows as "no such user". That reading is
// only valid because database.Open sets clientFoundRows=true, making the
// driver report matched rows; otherwise a matched-but-unchanged update
// (renaming a user to its current name) would also report zero.
func (r *UserRepo) updateField(ctx context.Context, column, keyColumn, keyValue, value string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET "+column+"=? WHERE "+keyColumn+"=?",
		value, keyValue)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
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

// DeleteByUsername removes a user and returns the deleted record so callers
// can echo its identity fields back.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (model.User, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", u.ID); err != nil {
		return model.User{}, err
	}
	return u, nil
}
