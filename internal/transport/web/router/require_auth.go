package router

import (
	"net/http"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := domain.ActorFromContext(r.Context())
		if actor == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
