package mocks

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRatingLister struct {
	mock.Mock
}

func (m *MockRatingLister) ListRecipeRatings(ctx context.Context, recipeID int64) ([]domain.DifficultyRating, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).([]domain.DifficultyRating), args.Error(1)
}

type MockRatingFetcher struct {
	mock.Mock
}

func (m *MockRatingFetcher) FetchRating(ctx context.Context, id int64) (domain.DifficultyRating, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DifficultyRating), args.Error(1)
}

type MockRatingByAuthorFetcher struct {
	mock.Mock
}

func (m *MockRatingByAuthorFetcher) FetchRatingByRecipeAndAuthor(
	ctx context.Context,
	recipeID, userID int64,
) (domain.DifficultyRating, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(domain.DifficultyRating), args.Error(1)
}

type MockRatingCreator struct {
	mock.Mock
}

func (m *MockRatingCreator) CreateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(domain.DifficultyRating), args.Error(1)
}

type MockRatingUpdater struct {
	mock.Mock
}

func (m *MockRatingUpdater) UpdateRating(ctx context.Context, rating domain.DifficultyRating) (domain.DifficultyRating, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(domain.DifficultyRating), args.Error(1)
}

type MockRatingDeleter struct {
	mock.Mock
}

func (m *MockRatingDeleter) DeleteRating(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
