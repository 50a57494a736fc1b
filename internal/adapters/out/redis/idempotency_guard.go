// Package redis stores request idempotency keys in Redis with go-redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"dronedelivery/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// DefaultKeyTTL is how long a claimed key blocks repeats.
const DefaultKeyTTL = 24 * time.Hour

// IdempotencyGuard implements ports.IdempotencyGuard with SET NX.
// A key is remembered for ttl after its first claim.
type IdempotencyGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ ports.IdempotencyGuard = (*IdempotencyGuard)(nil)

// NewIdempotencyGuard creates a guard. A non-positive ttl selects DefaultKeyTTL.
func NewIdempotencyGuard(client redis.Cmdable, ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = DefaultKeyTTL
	}
	return &IdempotencyGuard{client: client, ttl: ttl}
}

// Claim records key and reports true, or reports false when it is already claimed.
func (g *IdempotencyGuard) Claim(ctx context.Context, key string) (bool, error) {
	claimed, err := g.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key %q: %w", key, err)
	}
	return claimed, nil
}

// Release deletes key. Deleting a missing key is not an error.
func (g *IdempotencyGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key %q: %w", key, err)
	}
	return nil
}
