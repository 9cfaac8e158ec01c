package datasources

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// RecipeLister returns a page of recipes, newest first, with their read-model
// fields (author, comments, comment count, average difficulty) populated.
type RecipeLister interface {
	ListRecipes(ctx context.Context, options domain.RecipeListOptions) ([]domain.Recipe, error)
}

// RecipeCounter counts all stored recipes.
type RecipeCounter interface {
	TotalRecipes(ctx context.Context) (int64, error)
}

// RecipeFetcher retrieves a single recipe with its read-model fields.
// Returns domain.ErrNotFound when no such recipe exists.
type RecipeFetcher interface {
	FetchRecipe(ctx context.Context, id int64) (domain.Recipe, error)
}

// RecipeCreator stores a new recipe and returns it fully populated.
type RecipeCreator interface {
	CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
}

// RecipeUpdater rewrites the client-writable fields of a recipe.
type RecipeUpdater interface {
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
}

// RecipeDeleter removes a recipe; comments and ratings cascade.
type RecipeDeleter interface {
	DeleteRecipe(ctx context.Context, id int64) error
}

// RecipeRepository combines all recipe operations.
type RecipeRepository interface {
	RecipeLister
	RecipeCounter
	RecipeFetcher
	RecipeCreator
	RecipeUpdater
	RecipeDeleter
}
