package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const actorContextKey contextKey = "actor"

// ContextWithActor attaches the authenticated user to the context.
func ContextWithActor(ctx context.Context, actor *User) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext returns the authenticated user, or nil for anonymous requests.
func ActorFromContext(ctx context.Context) *User {
	actor := ctx.Value(actorContextKey)
	if actor == nil {
		return nil
	}
	return actor.(*User)
}
