package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RecipeDelete struct {
	Fetcher datasources.RecipeFetcher
	Deleter datasources.RecipeDeleter
}

func (c RecipeDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	if !domain.Can(actor, domain.VerbDelete, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	if err := c.Deleter.DeleteRecipe(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
