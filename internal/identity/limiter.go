package identity

import "context"

// Limiter throttles failed sign-in attempts per client key.
type Limiter interface {
	// Blocked reports whether key has used up its attempts.
	Blocked(ctx context.Context, key string) (bool, error)
	// Fail records one failed attempt for key.
	Fail(ctx context.Context, key string) error
	// Reset clears the record for key after a successful sign-in.
	Reset(ctx context.Context, key string) error
}

// NoopLimiter never blocks. It is used when no Redis is configured.
type NoopLimiter struct{}

func (NoopLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }
func (NoopLimiter) Fail(context.Context, string) error            { return nil }
func (NoopLimiter) Reset(context.Context, string) error           { return nil }
