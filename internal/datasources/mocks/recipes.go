package mocks

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRecipeLister struct {
	mock.Mock
}

func (m *MockRecipeLister) ListRecipes(ctx context.Context, options domain.RecipeListOptions) ([]domain.Recipe, error) {
	args := m.Called(ctx, options)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

type MockRecipeCounter struct {
	mock.Mock
}

func (m *MockRecipeCounter) TotalRecipes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockRecipeFetcher struct {
	mock.Mock
}

func (m *MockRecipeFetcher) FetchRecipe(ctx context.Context, id int64) (domain.Recipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

type MockRecipeCreator struct {
	mock.Mock
}

func (m *MockRecipeCreator) CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

type MockRecipeUpdater struct {
	mock.Mock
}

func (m *MockRecipeUpdater) UpdateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

type MockRecipeDeleter struct {
	mock.Mock
}

func (m *MockRecipeDeleter) DeleteRecipe(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
