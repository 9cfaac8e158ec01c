package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type CommentDelete struct {
	Fetcher datasources.CommentFetcher
	Deleter datasources.CommentDeleter
}

func (c CommentDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := scopedComment(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	actor := domain.ActorFromContext(ctx)
	if !domain.Can(actor, domain.VerbDelete, existing) {
		writeError(ctx, w, domain.ErrForbidden)
		return
	}

	if err := c.Deleter.DeleteComment(ctx, existing.ID); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
