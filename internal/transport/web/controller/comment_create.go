package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type CommentCreate struct {
	Recipes datasources.RecipeFetcher
	Creator datasources.CommentCreator
}

func (c CommentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		writeError(ctx, w, domain.ErrAuthenticationRequired)
		return
	}

	recipeID, err := pathID(r, "recipe_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := c.Recipes.FetchRecipe(ctx, recipeID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var in domain.CommentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	comment, err := c.Creator.CreateComment(ctx, domain.Comment{
		RecipeID: recipeID,
		Author:   *actor,
		Content:  in.Content,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, comment)
}
