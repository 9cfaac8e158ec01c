package mocks

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCommentLister struct {
	mock.Mock
}

func (m *MockCommentLister) ListRecipeComments(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type MockCommentFetcher struct {
	mock.Mock
}

func (m *MockCommentFetcher) FetchComment(ctx context.Context, id int64) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

type MockCommentCreator struct {
	mock.Mock
}

func (m *MockCommentCreator) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(domain.Comment), args.Error(1)
}

type MockCommentUpdater struct {
	mock.Mock
}

func (m *MockCommentUpdater) UpdateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(domain.Comment), args.Error(1)
}

type MockCommentDeleter struct {
	mock.Mock
}

func (m *MockCommentDeleter) DeleteComment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
