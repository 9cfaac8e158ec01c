package controller

import (
	"errors"
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenObtain struct {
	Users  datasources.UserByUsernameGetter
	Issuer *auth.TokenIssuer
}

func (c TokenObtain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in credentialsBody
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}

	user, err := c.Users.GetUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(ctx, w, http.StatusUnauthorized, detailBody{
				Detail: "No active account found with the given credentials",
			})
			return
		}

		writeError(ctx, w, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		writeJSON(ctx, w, http.StatusUnauthorized, detailBody{
			Detail: "No active account found with the given credentials",
		})
		return
	}

	pair, err := c.Issuer.Issue(user.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pair)
}
