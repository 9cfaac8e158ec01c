package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
)

type refreshBody struct {
	Refresh string `json:"refresh"`
}

type accessBody struct {
	Access string `json:"access"`
}

type TokenRefresh struct {
	Issuer *auth.TokenIssuer
}

func (c TokenRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in refreshBody
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}

	userID, err := c.Issuer.Parse(in.Refresh, auth.TokenTypeRefresh)
	if err != nil {
		writeJSON(ctx, w, http.StatusUnauthorized, detailBody{
			Detail: "Token is invalid or expired",
		})
		return
	}

	access, err := c.Issuer.IssueToken(userID, auth.TokenTypeAccess)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, accessBody{Access: access})
}
