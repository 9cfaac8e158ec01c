package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
)

type RecipeGet struct {
	Fetcher datasources.RecipeFetcher
}

func (c RecipeGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "recipe_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	recipe, err := c.Fetcher.FetchRecipe(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, recipe)
}
