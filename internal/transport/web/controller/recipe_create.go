package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RecipeCreate struct {
	Creator datasources.RecipeCreator
}

func (c RecipeCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		writeError(ctx, w, domain.ErrAuthenticationRequired)
		return
	}

	var in domain.RecipeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	// The author is always the acting user, regardless of the request body.
	recipe, err := c.Creator.CreateRecipe(ctx, domain.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CookingTime:  in.CookingTime,
		Author:       *actor,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, recipe)
}
