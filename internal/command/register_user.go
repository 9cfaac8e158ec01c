package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// RegisterUserRequest carries a validated registration form.
type RegisterUserRequest struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

// RegisterUser creates an account: applies the password rules, normalizes the
// email to lowercase, rejects duplicate emails, and stores a bcrypt hash.
type RegisterUser struct {
	EmailChecker datasources.UserEmailChecker
	Creator      datasources.UserCreator
}

func NewRegisterUser(
	emailChecker datasources.UserEmailChecker,
	creator datasources.UserCreator,
) *RegisterUser {
	return &RegisterUser{
		EmailChecker: emailChecker,
		Creator:      creator,
	}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (domain.User, error) {
	if err := domain.ValidatePassword(req.Password1, req.Password2); err != nil {
		return domain.User{}, err
	}

	email := strings.ToLower(req.Email)

	exists, err := c.EmailChecker.UserEmailExists(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("checking email uniqueness: %w", err)
	}
	if exists {
		return domain.User{}, domain.NewFieldError("email", "A user with this email already exists.")
	}

	hash, err := auth.HashPassword(req.Password1)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := c.Creator.CreateUser(ctx, req.Username, email, hash)
	if err != nil {
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "registered user", "user_id", user.ID, "username", user.Username)

	return user, nil
}
