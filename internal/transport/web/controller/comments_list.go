package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
)

type CommentsList struct {
	Recipes  datasources.RecipeFetcher
	Comments datasources.CommentLister
}

func (c CommentsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	comments, err := c.Comments.ListRecipeComments(ctx, recipeID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, comments)
}
