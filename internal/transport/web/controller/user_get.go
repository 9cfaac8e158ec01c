package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type currentUserBody struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// UserGet returns the acting user's own account details.
type UserGet struct{}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		writeError(ctx, w, domain.ErrAuthenticationRequired)
		return
	}

	writeJSON(ctx, w, http.StatusOK, currentUserBody{
		ID:       actor.ID,
		Username: actor.Username,
		Email:    actor.Email,
		IsStaff:  actor.IsStaff,
	})
}
