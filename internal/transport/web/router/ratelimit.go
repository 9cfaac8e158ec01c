package router

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/recipehub/recipe-hub-backend/internal/domain"
	"github.com/recipehub/recipe-hub-backend/internal/ratelimit"
)

func rateLimitMiddleware(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			class := ratelimit.ClassAnonymous
			key := clientIP(r)
			if actor := domain.ActorFromContext(ctx); actor != nil {
				class = ratelimit.ClassUser
				key = strconv.FormatInt(actor.ID, 10)
			}

			decision, err := limiter.Admit(ctx, class, key)
			if err != nil {
				// A broken counter store must not take the API down with it.
				logger := domain.LoggerFromContext(ctx)
				logger.WarnContext(ctx, "rate limiter unavailable, admitting request", "error", err)

				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = fmt.Fprintf(w,
					`{"detail":"Request was throttled. Expected available in %d seconds."}`, seconds)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
