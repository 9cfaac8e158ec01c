package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/recipehub/recipe-hub-backend/internal/ratelimit"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func throttledRequest(handler http.Handler, actor *domain.User, remoteAddr, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remoteAddr

	ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if actor != nil {
		ctx = domain.ContextWithActor(ctx, actor)
	}
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	anonRate := ratelimit.Rate{Requests: 3, Window: time.Minute}
	userRate := ratelimit.Rate{Requests: 5, Window: time.Minute}

	t.Run("anonymous_quota", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.NewMemoryStore(), anonRate, userRate)
		handler := rateLimitMiddleware(limiter)(okHandler())

		for i := 0; i < 3; i++ {
			rec := throttledRequest(handler, nil, "198.51.100.7:4242", "/recipes/")
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := throttledRequest(handler, nil, "198.51.100.7:4242", "/recipes/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))

		var body struct {
			Detail string `json:"detail"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Contains(t, body.Detail, "Request was throttled.")
	})

	t.Run("user_quota_shared_across_endpoints", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.NewMemoryStore(), anonRate, userRate)
		handler := rateLimitMiddleware(limiter)(okHandler())

		actor := &domain.User{ID: 7, Username: "cook"}
		targets := []string{"/recipes/", "/recipes/1/", "/recipes/1/comments/", "/recipes/", "/rss"}
		for i, target := range targets {
			rec := throttledRequest(handler, actor, "198.51.100.7:4242", target)
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := throttledRequest(handler, actor, "198.51.100.7:4242", "/recipes/")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("quotas_are_independent_per_actor", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.NewMemoryStore(), anonRate, userRate)
		handler := rateLimitMiddleware(limiter)(okHandler())

		for i := 0; i < 3; i++ {
			rec := throttledRequest(handler, nil, "198.51.100.7:4242", "/recipes/")
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}
		rec := throttledRequest(handler, nil, "198.51.100.7:4242", "/recipes/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		// A different address and an authenticated user still have full quotas.
		rec = throttledRequest(handler, nil, "203.0.113.9:4242", "/recipes/")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = throttledRequest(handler, &domain.User{ID: 7}, "198.51.100.7:4242", "/recipes/")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fails_open_when_store_is_down", func(t *testing.T) {
		limiter := ratelimit.New(failingStore{}, anonRate, userRate)
		handler := rateLimitMiddleware(limiter)(okHandler())

		rec := throttledRequest(handler, nil, "198.51.100.7:4242", "/recipes/")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type failingStore struct{}

func (failingStore) Increment(ctx context.Context, key string, lifetime time.Duration) (int64, error) {
	return 0, context.DeadlineExceeded
}

func (failingStore) Reset(ctx context.Context) error {
	return nil
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "remote_addr", remoteAddr: "198.51.100.7:4242", want: "198.51.100.7"},
		{name: "forwarded_single", remoteAddr: "10.0.0.1:80", forwarded: "203.0.113.9", want: "203.0.113.9"},
		{name: "forwarded_chain", remoteAddr: "10.0.0.1:80", forwarded: "203.0.113.9, 10.0.0.2", want: "203.0.113.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/recipes/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			assert.Equal(t, tc.want, clientIP(req))
		})
	}
}
