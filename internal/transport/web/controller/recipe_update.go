package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RecipeUpdate struct {
	Fetcher datasources.RecipeFetcher
	Updater datasources.RecipeUpdater
}

func (c RecipeUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "recipe_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	existing, err := c.Fetcher.FetchRecipe(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbUpdate, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	// PATCH merges over the stored row; PUT requires the full body.
	in := domain.RecipeInput{
		Title:        existing.Title,
		Description:  existing.Description,
		Ingredients:  existing.Ingredients,
		Instructions: existing.Instructions,
		CookingTime:  existing.CookingTime,
	}
	if r.Method == http.MethodPut {
		in = domain.RecipeInput{}
	}

	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Ingredients = in.Ingredients
	existing.Instructions = in.Instructions
	existing.CookingTime = in.CookingTime

	updated, err := c.Updater.UpdateRecipe(ctx, existing)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}
