// Package ratelimit implements fixed-window request counting per actor.
// Counters live behind the CounterStore interface so the backing store can be
// in-process for tests and single nodes, or Redis when several instances must
// share one budget.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActorClass separates quota pools: anonymous callers are keyed by address,
// authenticated callers by user identity.
type ActorClass string

const (
	ClassAnonymous ActorClass = "anon"
	ClassUser      ActorClass = "user"
)

// Rate is a request quota over a window, e.g. 150 requests per minute.
type Rate struct {
	Requests int
	Window   time.Duration
}

// ParseRate parses quota strings of the form "150/minute".
// Supported windows: second, minute, hour, day.
func ParseRate(s string) (Rate, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rate{}, fmt.Errorf("invalid rate [%s]: want <requests>/<window>", s)
	}

	requests, err := strconv.Atoi(parts[0])
	if err != nil || requests < 1 {
		return Rate{}, fmt.Errorf("invalid request count in rate [%s]", s)
	}

	var window time.Duration
	switch parts[1] {
	case "second":
		window = time.Second
	case "minute":
		window = time.Minute
	case "hour":
		window = time.Hour
	case "day":
		window = 24 * time.Hour
	default:
		return Rate{}, fmt.Errorf("unknown rate window [%s]", parts[1])
	}

	return Rate{Requests: requests, Window: window}, nil
}

// Decision is the outcome of admitting one request.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter admits or throttles requests against per-class fixed-window quotas.
// The quota is shared across all endpoints for a given actor key.
type Limiter struct {
	store CounterStore
	rates map[ActorClass]Rate
	now   func() time.Time
}

func New(store CounterStore, anon, user Rate) *Limiter {
	return &Limiter{
		store: store,
		rates: map[ActorClass]Rate{
			ClassAnonymous: anon,
			ClassUser:      user,
		},
		now: time.Now,
	}
}

// Admit counts one request for the actor and reports whether it is within
// quota. The first N requests in a window pass; the (N+1)-th fails.
func (l *Limiter) Admit(ctx context.Context, class ActorClass, key string) (Decision, error) {
	rate, ok := l.rates[class]
	if !ok || rate.Requests < 1 {
		return Decision{Allowed: true}, nil
	}

	now := l.now()
	windowStart := now.Truncate(rate.Window)
	storeKey := fmt.Sprintf("throttle:%s:%s:%d", class, key, windowStart.Unix())

	count, err := l.store.Increment(ctx, storeKey, rate.Window)
	if err != nil {
		return Decision{}, fmt.Errorf("incrementing request counter: %w", err)
	}

	if count > int64(rate.Requests) {
		return Decision{RetryAfter: windowStart.Add(rate.Window).Sub(now)}, nil
	}

	return Decision{Allowed: true}, nil
}

// Reset clears all counters. Intended for test isolation between scenarios.
func (l *Limiter) Reset(ctx context.Context) error {
	return l.store.Reset(ctx)
}
