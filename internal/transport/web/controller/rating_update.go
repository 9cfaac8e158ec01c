package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RatingUpdate struct {
	Fetcher datasources.RatingFetcher
	Updater datasources.RatingUpdater
}

func (c RatingUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := scopedRating(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbUpdate, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	in := domain.RatingInput{Rating: existing.Rating}
	if r.Method == http.MethodPut {
		in = domain.RatingInput{}
	}

	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	existing.Rating = in.Rating

	updated, err := c.Updater.UpdateRating(ctx, existing)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}
