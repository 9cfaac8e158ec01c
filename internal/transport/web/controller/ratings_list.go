package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
)

type RatingsList struct {
	Recipes datasources.RecipeFetcher
	Ratings datasources.RatingLister
}

func (c RatingsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipeID, err := pathID(r, "recipe_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := c.Recipes.FetchRecipe(ctx, recipeID); err != nil {
		writeError(ctx, w, err)
		return
	}

	ratings, err := c.Ratings.ListRecipeRatings(ctx, recipeID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ratings)
}
