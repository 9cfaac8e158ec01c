package controller

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type RatingGet struct {
	Fetcher datasources.RatingFetcher
}

func (c RatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rating, err := scopedRating(r, c.Fetcher)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rating)
}

// scopedRating loads the rating addressed by the URL, treating a rating that
// belongs to a different recipe as absent.
func scopedRating(r *http.Request, fetcher datasources.RatingFetcher) (domain.DifficultyRating, error) {
	recipeID, err := pathID(r, "recipe_id")
	if err != nil {
		return domain.DifficultyRating{}, err
	}

	ratingID, err := pathID(r, "rating_id")
	if err != nil {
		return domain.DifficultyRating{}, err
	}

	rating, err := fetcher.FetchRating(r.Context(), ratingID)
	if err != nil {
		return domain.DifficultyRating{}, err
	}

	if rating.RecipeID != recipeID {
		return domain.DifficultyRating{}, domain.ErrNotFound
	}

	return rating, nil
}
