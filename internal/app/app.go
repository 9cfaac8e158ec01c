package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
	"github.com/recipehub/recipe-hub-backend/internal/datasources/mysql"
	"github.com/recipehub/recipe-hub-backend/internal/ratelimit"
	"github.com/recipehub/recipe-hub-backend/internal/transport/web/router"
	"github.com/recipehub/recipe-hub-backend/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repository, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	issuer := &auth.TokenIssuer{
		SigningKey: []byte(MustGetEnvAsString(ctx, "JWT_SIGNING_KEY")),
		AccessTTL:  MustGetEnvAsDuration(ctx, "JWT_ACCESS_TOKEN_LIFETIME"),
		RefreshTTL: MustGetEnvAsDuration(ctx, "JWT_REFRESH_TOKEN_LIFETIME"),
	}

	limiter, err := setupRateLimiter(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rate limiter: %w", err)
	}

	authMiddleware := setupAuthMiddleware(issuer, repository)

	httpRouter, err := router.MakeRouter(
		repository,
		repository,
		repository,
		repository,
		issuer,
		limiter,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupRateLimiter(ctx context.Context) (*ratelimit.Limiter, error) {
	anonRate, err := ratelimit.ParseRate(MustGetEnvAsString(ctx, "THROTTLE_ANON_RATE"))
	if err != nil {
		return nil, fmt.Errorf("parsing anonymous throttle rate: %w", err)
	}

	userRate, err := ratelimit.ParseRate(MustGetEnvAsString(ctx, "THROTTLE_USER_RATE"))
	if err != nil {
		return nil, fmt.Errorf("parsing user throttle rate: %w", err)
	}

	var store ratelimit.CounterStore
	switch driver := MustGetEnvAsString(ctx, "RATELIMIT_DRIVER"); driver {
	case "memory":
		store = ratelimit.NewMemoryStore()
	case "redis":
		opts, err := redis.ParseURL(MustGetEnvAsString(ctx, "REDIS_URI"))
		if err != nil {
			return nil, fmt.Errorf("parsing Redis URI: %w", err)
		}
		store = ratelimit.NewRedisStore(redis.NewClient(opts))
	default:
		return nil, fmt.Errorf("unknown rate limit driver [%s]", driver)
	}

	return ratelimit.New(store, anonRate, userRate), nil
}

func setupAuthMiddleware(
	issuer *auth.TokenIssuer, users datasources.UserByIDGetter,
) func(http.Handler) http.Handler {
	return router.NewAuthMiddleware([]router.AuthValidator{
		router.NewJWTValidator(issuer, users),
	})
}
