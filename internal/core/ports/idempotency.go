package ports

import "context"

// IdempotencyGuard remembers request keys for a while.
type IdempotencyGuard interface {
	// Claim records key and returns true, or returns false if the key was already claimed.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets a claimed key so it can be claimed again. Unknown keys are ignored.
	Release(ctx context.Context, key string) error
}
