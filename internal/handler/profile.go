package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamecho/gamecho-backend/internal/repository"
)

// ProfileHandler joins the credential lookup with the caller's ratings to
// produce a single profile view.
type ProfileHandler struct {
	Creds   CredentialService
	Ratings *repository.RatingRepo
}

func NewProfileHandler(creds CredentialService, ratings *repository.RatingRepo) *ProfileHandler {
	return &ProfileHandler{Creds: creds, Ratings: ratings}
}

// Get resolves the token in the path and returns the user together with
// every rating they have submitted.
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Creds.ResolveByToken(ctx, c.Param("token"))
	if err != nil {
		return failJSON(c, err)
	}

	ratings, err := h.Ratings.ListByUser(ctx, u.ID)
	if err != nil {
		return failJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"result": true,
		"profile": echo.Map{
			"user":    userView{Username: u.Username, Email: u.Email, Token: u.Token},
			"ratings": toRatingViews(ratings),
		},
	})
}
