package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/repository"
	"github.com/gamecho/gamecho-backend/internal/utils"
)

// UserStore is the slice of the user repository the services depend on.
type UserStore interface {
	Create(ctx context.Context, u model.User) (uint64, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByToken(ctx context.Context, token string) (model.User, error)
	UpdateToken(ctx context.Context, username, token string) error
	UpdateUsername(ctx context.Context, current, next string) error
	UpdateEmail(ctx context.Context, current, next string) error
	DeleteByUsername(ctx context.Context, username string) (model.User, error)
}

// Credentials is what signup and signin hand back to the client: the fresh
// session token plus the echoed identity fields.
type Credentials struct {
	Token    string
	Username string
	Email    string
}

// CredentialService validates registration and login input, hashes and
// verifies passwords, and issues session tokens.
type CredentialService struct {
	users UserStore
	cost  int // bcrypt cost
}

func NewCredentialService(users UserStore, bcryptCost int) *CredentialService {
	return &CredentialService{users: users, cost: bcryptCost}
}

// Signup registers a new account and issues its first session token.
// Uniqueness is check-then-write; a concurrent signup racing past the check
// is caught by the UNIQUE index and reported the same way.
func (s *CredentialService) Signup(ctx context.Context, username, email, password, confirmPassword string) (Credentials, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(confirmPassword) == "" {
		return Credentials{}, ErrMissingFields
	}
	if password != confirmPassword {
		return Credentials{}, ErrPasswordMismatch
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return Credentials{}, err
	}
	if exists {
		return Credentials{}, ErrAlreadyRegistered
	}

	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return Credentials{}, err
	}
	token, err := utils.NewSessionToken()
	if err != nil {
		return Credentials{}, err
	}

	_, err = s.users.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Token:        token,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return Credentials{}, ErrAlreadyRegistered
	}
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: token, Username: username, Email: email}, nil
}

// Signin verifies a username/password pair and rotates the session token.
// Unknown username and wrong password fail identically.
func (s *CredentialService) Signin(ctx context.Context, username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return Credentials{}, ErrMissingFields
	}

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return Credentials{}, ErrBadCredentials
	}
	if err != nil {
		return Credentials{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return Credentials{}, ErrBadCredentials
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return Credentials{}, err
	}
	if err := s.users.UpdateToken(ctx, u.Username, token); err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: token, Username: u.Username, Email: u.Email}, nil
}

// ResolveByToken returns the user currently holding token. The password
// hash is stripped before the record leaves the service.
func (s *CredentialService) ResolveByToken(ctx context.Context, token string) (model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.User{}, ErrUserNotFound
	}
	u, err := s.users.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}
