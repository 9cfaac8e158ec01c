package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	User *domain.User
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"detail":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithActor(r.Context(), result.User)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewJWTValidator creates a validator for access tokens issued by this service.
func NewJWTValidator(issuer *auth.TokenIssuer, users datasources.UserByIDGetter) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, nil
		}

		userID, err := issuer.Parse(authHeader[len("Bearer "):], auth.TokenTypeAccess)
		if err != nil {
			return nil, fmt.Errorf("invalid or expired access token")
		}

		user, err := users.GetUserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("no account found for access token")
			}
			return nil, fmt.Errorf("unable to load account for access token")
		}

		return &AuthResult{User: &user}, nil
	}
}
