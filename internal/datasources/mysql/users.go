package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	ib := newInsert("users", "username", "email", "password_hash")
	ib.Values(username, email, passwordHash)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// Unique indexes on username and email are the backstop beneath the
		// registration pre-checks.
		if isDuplicateKey(err, "uq_users_username") {
			return domain.User{}, domain.NewFieldError("username", "A user with that username already exists.")
		}
		if isDuplicateKey(err, "uq_users_email") {
			return domain.User{}, domain.NewFieldError("email", "A user with this email already exists.")
		}
		return domain.User{}, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("reading inserted user ID: %w", err)
	}

	return r.GetUserByID(ctx, id)
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	sb := newSelect("id", "username", "email", "password_hash", "is_staff")
	sb.From("users")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	return r.scanUser(ctx, query, args)
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	sb := newSelect("id", "username", "email", "password_hash", "is_staff")
	sb.From("users")
	sb.Where(sb.Equal("username", username))

	query, args := sb.Build()
	return r.scanUser(ctx, query, args)
}

func (r *Repository) scanUser(ctx context.Context, query string, args []interface{}) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsStaff,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}

func (r *Repository) UserEmailExists(ctx context.Context, email string) (bool, error) {
	sb := newSelect("COUNT(*)")
	sb.From("users")
	sb.Where(sb.Equal("email", email))

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("counting users by email: %w", err)
	}

	return count > 0, nil
}
