package mocks

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserCreator struct {
	mock.Mock
}

func (m *MockUserCreator) CreateUser(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockUserByIDGetter struct {
	mock.Mock
}

func (m *MockUserByIDGetter) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockUserByUsernameGetter struct {
	mock.Mock
}

func (m *MockUserByUsernameGetter) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockUserEmailChecker struct {
	mock.Mock
}

func (m *MockUserEmailChecker) UserEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
