package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/command"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type Register struct {
	Command command.Command[command.RegisterUserRequest, domain.User]
}

func (c Register) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbRegister, nil) {
		writeJSON(ctx, w, http.StatusForbidden, detailBody{
			Detail: "You are already authenticated. Please log out to register a new account.",
		})
		return
	}

	var in domain.RegistrationInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	user, err := c.Command.Execute(ctx, command.RegisterUserRequest{
		Username:  in.Username,
		Email:     in.Email,
		Password1: in.Password1,
		Password2: in.Password2,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, user)
}
