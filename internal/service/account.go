package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/repository"
)

// AccountService mutates and deletes accounts keyed by their unique fields.
type AccountService struct {
	users UserStore
}

func NewAccountService(users UserStore) *AccountService {
	return &AccountService{users: users}
}

// UpdateUsername renames the account currently known as current. There is
// no uniqueness pre-check: a rename onto a taken username surfaces as the
// UNIQUE index violation and is reported as a registration conflict.
func (s *AccountService) UpdateUsername(ctx context.Context, current, next string) error {
	current = strings.TrimSpace(current)
	next = strings.TrimSpace(next)
	if current == "" || next == "" {
		return ErrMissingFields
	}
	return s.mapUpdateErr(s.users.UpdateUsername(ctx, current, next))
}

// UpdateEmail is symmetric to UpdateUsername on the email field.
func (s *AccountService) UpdateEmail(ctx context.Context, current, next string) error {
	current = strings.TrimSpace(current)
	next = strings.TrimSpace(next)
	if current == "" || next == "" {
		return ErrMissingFields
	}
	return s.mapUpdateErr(s.users.UpdateEmail(ctx, current, next))
}

func (s *AccountService) mapUpdateErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrAlreadyRegistered
	default:
		return err
	}
}

// DeleteUser removes the account and returns the deleted record so the
// caller can echo its identity fields. The stripped record never carries
// the password hash or a usable token.
func (s *AccountService) DeleteUser(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.User{}, ErrUserNotFound
	}
	u, err := s.users.DeleteByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.PasswordHash = ""
	u.Token = ""
	return u, nil
}
