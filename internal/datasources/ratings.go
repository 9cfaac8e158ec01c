package datasources

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// RatingLister returns all difficulty ratings on a recipe, newest first.
type RatingLister interface {
	ListRecipeRatings(ctx context.Context, recipeID int64) ([]domain.DifficultyRating, error)
}

// RatingFetcher retrieves a single rating.
// Returns domain.ErrNotFound when no such rating exists.
type RatingFetcher interface {
	FetchRating(ctx context.Context, id int64) (domain.DifficultyRating, error)
}

// RatingByAuthorFetcher retrieves the rating a user gave a recipe, if any.
// Returns domain.ErrNotFound when the user has not rated the recipe.
type RatingByAuthorFetcher interface {
	FetchRatingByRecipeAndAuthor(ctx context.Context, recipeID, userID int64) (domain.DifficultyRating, error)
}

// RatingCreator stores a new rating. The storage layer enforces the
// one-rating-per-(recipe, author) unique constraint and surfaces violations
// as a domain.ConflictError.
type RatingCreator interface {
	CreateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error)
}

// RatingUpdater rewrites a rating's value.
type RatingUpdater interface {
	UpdateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error)
}

// RatingDeleter removes a rating.
type RatingDeleter interface {
	DeleteRating(ctx context.Context, id int64) error
}

// RatingRepository combines all difficulty rating operations.
type RatingRepository interface {
	RatingLister
	RatingFetcher
	RatingByAuthorFetcher
	RatingCreator
	RatingUpdater
	RatingDeleter
}
