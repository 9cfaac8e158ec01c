package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type CommentUpdate struct {
	Fetcher datasources.CommentFetcher
	Updater datasources.CommentUpdater
}

func (c CommentUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := scopedComment(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbUpdate, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	in := domain.CommentInput{Content: existing.Content}
	if r.Method == http.MethodPut {
		in = domain.CommentInput{}
	}

	if err := decodeJSON(r, &in); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	existing.Content = in.Content

	updated, err := c.Updater.UpdateComment(ctx, existing)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}
