package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// RateRecipeRequest asks to record an actor's difficulty rating for a recipe.
type RateRecipeRequest struct {
	RecipeID int64
	Actor    domain.User
	Rating   int
}

// RateRecipe creates a difficulty rating while enforcing the
// one-rating-per-(recipe, author) invariant. An explicit pre-insert check
// produces the friendly conflict message; the storage layer's unique index
// catches the racing case and the repository reports it as the same conflict.
type RateRecipe struct {
	RecipeFetcher  datasources.RecipeFetcher
	ExistingRating datasources.RatingByAuthorFetcher
	Creator        datasources.RatingCreator
}

func NewRateRecipe(
	recipeFetcher datasources.RecipeFetcher,
	existingRating datasources.RatingByAuthorFetcher,
	creator datasources.RatingCreator,
) *RateRecipe {
	return &RateRecipe{
		RecipeFetcher:  recipeFetcher,
		ExistingRating: existingRating,
		Creator:        creator,
	}
}

func (c *RateRecipe) Execute(ctx context.Context, req RateRecipeRequest) (domain.DifficultyRating, error) {
	if _, err := c.RecipeFetcher.FetchRecipe(ctx, req.RecipeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DifficultyRating{}, domain.ErrNotFound
		}
		return domain.DifficultyRating{}, fmt.Errorf("fetching recipe: %w", err)
	}

	_, err := c.ExistingRating.FetchRatingByRecipeAndAuthor(ctx, req.RecipeID, req.Actor.ID)
	if err == nil {
		return domain.DifficultyRating{}, domain.ConflictError{Detail: domain.DuplicateRatingDetail}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.DifficultyRating{}, fmt.Errorf("checking for existing rating: %w", err)
	}

	rating, err := c.Creator.CreateRating(ctx, domain.DifficultyRating{
		RecipeID:     req.RecipeID,
		RatingAuthor: req.Actor,
		Rating:       req.Rating,
	})
	if err != nil {
		return domain.DifficultyRating{}, fmt.Errorf("creating rating: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "recorded difficulty rating",
		"recipe_id", req.RecipeID, "user_id", req.Actor.ID, "rating", req.Rating)

	return rating, nil
}
