package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RatingDelete struct {
	Fetcher datasources.RatingFetcher
	Deleter datasources.RatingDeleter
}

func (c RatingDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := scopedRating(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbDelete, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	if err := c.Deleter.DeleteRating(ctx, existing.ID); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
