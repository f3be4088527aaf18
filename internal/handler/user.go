package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/model"
	"github.com/gamecho/gamecho-backend/internal/queue"
	"github.com/gamecho/gamecho-backend/internal/service"
)

// CredentialService and AccountService define the slices of the service
// layer the user handler needs. Tests substitute fakes.
type CredentialService interface {
	Signup(ctx context.Context, username, email, password, confirmPassword string) (service.Credentials, error)
	Signin(ctx context.Context, username, password string) (service.Credentials, error)
	ResolveByToken(ctx context.Context, token string) (model.User, error)
}

type AccountService interface {
	UpdateUsername(ctx context.Context, current, next string) error
	UpdateEmail(ctx context.Context, current, next string) error
	DeleteUser(ctx context.Context, username string) (model.User, error)
}

// UserHandler serves the /users surface. Every response carries the
// {result, ...} envelope; on failure the error text is the exact message
// from the service taxonomy. PublishEvents toggles best-effort broker
// notifications for signup and deletion.
type UserHandler struct {
	Creds         CredentialService
	Accounts      AccountService
	PublishEvents bool
}

func NewUserHandler(creds CredentialService, accounts AccountService, publishEvents bool) *UserHandler {
	return &UserHandler{Creds: creds, Accounts: accounts, PublishEvents: publishEvents}
}

// ----- DTOs -----

type signupReq struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
type signinReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type updateUsernameReq struct {
	CurrentUsername string `json:"currentUsername"`
	NewUsername     string `json:"newUsername"`
}
type updateEmailReq struct {
	CurrentEmail string `json:"currentEmail"`
	NewEmail     string `json:"newEmail"`
}

type userView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// errStatus maps the service taxonomy onto HTTP status codes. The body
// keeps the legacy envelope either way, so callers branching on the
// `result` flag are unaffected by the code.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func failJSON(c echo.Context, err error) error {
	code := errStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		// Unexpected persistence failures stay out of the taxonomy.
		msg = "Internal server error"
		c.Logger().Error(err)
	}
	return c.JSON(code, echo.Map{"result": false, "error": msg})
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// Signup registers a new account and returns its first session token.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return failJSON(c, service.ErrMissingFields)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	creds, err := h.Creds.Signup(ctx, req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return failJSON(c, err)
	}

	if h.PublishEvents {
		_ = queue.PublishAccountEvent(ctx, queue.AccountEvent{
			Type:       queue.EventSignup,
			Username:   creds.Username,
			Email:      creds.Email,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"result":   true,
		"token":    creds.Token,
		"username": creds.Username,
		"email":    creds.Email,
	})
}

// Signin verifies credentials and rotates the session token.
func (h *UserHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return failJSON(c, service.ErrMissingFields)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	creds, err := h.Creds.Signin(ctx, req.Username, req.Password)
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":   true,
		"token":    creds.Token,
		"username": creds.Username,
		"email":    creds.Email,
	})
}

// GetByToken resolves a session token back to its user record.
func (h *UserHandler) GetByToken(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Creds.ResolveByToken(ctx, c.Param("token"))
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result": true,
		"user":   userView{Username: u.Username, Email: u.Email, Token: u.Token},
	})
}

// UpdateUsername renames an account keyed by its current username.
func (h *UserHandler) UpdateUsername(c echo.Context) error {
	var req updateUsernameReq
	if err := c.Bind(&req); err != nil {
		return failJSON(c, service.ErrMissingFields)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Accounts.UpdateUsername(ctx, req.CurrentUsername, req.NewUsername); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  true,
		"message": "Username updated successfully",
	})
}

// UpdateEmail changes an account's email keyed by its current email.
func (h *UserHandler) UpdateEmail(c echo.Context) error {
	var req updateEmailReq
	if err := c.Bind(&req); err != nil {
		return failJSON(c, service.ErrMissingFields)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Accounts.UpdateEmail(ctx, req.CurrentEmail, req.NewEmail); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":  true,
		"message": "Email updated successfully",
	})
}

// Delete removes an account by username and echoes the deleted record.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Accounts.DeleteUser(ctx, c.Param("username"))
	if err != nil {
		return failJSON(c, err)
	}

	if h.PublishEvents {
		_ = queue.PublishAccountEvent(ctx, queue.AccountEvent{
			Type:       queue.EventDeleted,
			Username:   u.Username,
			Email:      u.Email,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"result": true,
		"userdeleted": echo.Map{
			"username": u.Username,
			"email":    u.Email,
		},
	})
}
