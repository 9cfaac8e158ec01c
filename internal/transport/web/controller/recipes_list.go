package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RecipesList struct {
	Lister interface {
		datasources.RecipeLister
		datasources.RecipeCounter
	}
}

func (c RecipesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)

		writeJSON(ctx, w, http.StatusBadRequest, detailBody{Detail: "Invalid page."})
		return
	}

	recipes, err := c.Lister.ListRecipes(ctx, domain.RecipeListOptions{Page: page, PageSize: pageSize})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list recipes", "error", err)

		writeError(ctx, w, err)
		return
	}

	count, err := c.Lister.TotalRecipes(ctx)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to count recipes", "error", err)

		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, paginate(r, count, page, pageSize, recipes))
}
