package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type CommentGet struct {
	Fetcher datasources.CommentFetcher
}

func (c CommentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comment, err := scopedComment(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, comment)
}

// scopedComment loads the comment addressed by the URL, treating a comment
// that belongs to a different recipe as absent.
func scopedComment(r *http.Request, fetcher datasources.CommentFetcher) (domain.Comment, error) {
	recipeID, err := pathID(r, "recipe_id")
	if err != nil {
		return domain.Comment{}, err
	}

	commentID, err := pathID(r, "comment_id")
	if err != nil {
		return domain.Comment{}, err
	}

	comment, err := fetcher.FetchComment(r.Context(), commentID)
	if err != nil {
		return domain.Comment{}, err
	}

	if comment.RecipeID != recipeID {
		return domain.Comment{}, domain.ErrNotFound
	}

	return comment, nil
}
