package datasources

import (
	"context"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// UserCreator stores a new account. The email must already be normalized to
// lowercase and the password hashed.
type UserCreator interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (domain.User, error)
}

// UserByIDGetter retrieves an account by primary key.
type UserByIDGetter interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
}

// UserByUsernameGetter retrieves an account by username.
type UserByUsernameGetter interface {
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// UserEmailChecker reports whether an account already uses an email address.
type UserEmailChecker interface {
	UserEmailExists(ctx context.Context, email string) (bool, error)
}

// UserRepository combines all user directory operations.
type UserRepository interface {
	UserCreator
	UserByIDGetter
	UserByUsernameGetter
	UserEmailChecker
}
