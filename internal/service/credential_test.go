package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newCredsService(store *fakeStore) *CredentialService {
	return NewCredentialService(store, bcrypt.MinCost)
}

func TestSignup_Success(t *testing.T) {
	store := newFakeStore()
	svc := newCredsService(store)

	creds, err := svc.Signup(context.Background(), "testuser", "testuser@gmail.com", "password123", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
	assert.Equal(t, "testuser", creds.Username)
	assert.Equal(t, "testuser@gmail.com", creds.Email)

	// The stored record holds a hash, never the plaintext secret.
	u, err := store.GetByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
	assert.Equal(t, creds.Token, u.Token)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := newCredsService(newFakeStore())

	cases := []struct {
		name                                  string
		username, email, password, confirmPwd string
	}{
		{"empty username", "", "a@x.com", "pw1", "pw1"},
		{"empty email", "a", "", "pw1", "pw1"},
		{"empty password", "a", "a@x.com", "", "pw1"},
		{"empty confirm", "a", "a@x.com", "pw1", ""},
		{"whitespace only", "   ", "a@x.com", "pw1", "pw1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.username, tc.email, tc.password, tc.confirmPwd)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestSignup_PasswordMismatch(t *testing.T) {
	svc := newCredsService(newFakeStore())

	_, err := svc.Signup(context.Background(), "a", "a@x.com", "password123", "differentPassword")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestSignup_AlreadyRegistered(t *testing.T) {
	store := newFakeStore()
	svc := newCredsService(store)

	_, err := svc.Signup(context.Background(), "testuser", "testuser@gmail.com", "pw1", "pw1")
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Signup(context.Background(), "testuser", "other@gmail.com", "pw1", "pw1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// Same email, different username.
	_, err = svc.Signup(context.Background(), "other", "testuser@gmail.com", "pw1", "pw1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestSignup_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("db down")
	svc := newCredsService(store)

	_, err := svc.Signup(context.Background(), "a", "a@x.com", "pw1", "pw1")
	assert.EqualError(t, err, "db down")
}

func TestSignin_RotatesToken(t *testing.T) {
	store := newFakeStore()
	svc := newCredsService(store)

	first, err := svc.Signup(context.Background(), "testuser", "testuser@gmail.com", "password123", "password123")
	require.NoError(t, err)

	second, err := svc.Signin(context.Background(), "testuser", "password123")
	require.NoError(t, err)
	assert.Equal(t, "testuser", second.Username)
	assert.Equal(t, "testuser@gmail.com", second.Email)
	assert.NotEmpty(t, second.Token)
	assert.NotEqual(t, first.Token, second.Token)

	// Only the last-issued token resolves.
	_, err = svc.ResolveByToken(context.Background(), first.Token)
	assert.ErrorIs(t, err, ErrUserNotFound)
	u, err := svc.ResolveByToken(context.Background(), second.Token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", u.Username)
}

func TestSignin_MissingFields(t *testing.T) {
	svc := newCredsService(newFakeStore())

	_, err := svc.Signin(context.Background(), "", "password123")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Signin(context.Background(), "testuser", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSignin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newCredsService(store)

	_, err := svc.Signup(context.Background(), "testuser", "testuser@gmail.com", "password123", "password123")
	require.NoError(t, err)

	_, errUnknown := svc.Signin(context.Background(), "nosuchuser", "password123")
	_, errWrongPwd := svc.Signin(context.Background(), "testuser", "wrongpassword")

	assert.ErrorIs(t, errUnknown, ErrBadCredentials)
	assert.ErrorIs(t, errWrongPwd, ErrBadCredentials)
	// Externally identical, so usernames cannot be enumerated.
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error())
}

func TestResolveByToken(t *testing.T) {
	store := newFakeStore()
	svc := newCredsService(store)

	creds, err := svc.Signup(context.Background(), "testuser", "testuser@gmail.com", "password123", "password123")
	require.NoError(t, err)

	u, err := svc.ResolveByToken(context.Background(), creds.Token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", u.Username)
	assert.Equal(t, "testuser@gmail.com", u.Email)
	assert.Empty(t, u.PasswordHash, "hash must not leave the service")

	_, err = svc.ResolveByToken(context.Background(), "invalidToken")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ResolveByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
