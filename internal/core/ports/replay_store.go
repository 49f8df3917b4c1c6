package ports

import "context"

// ReplayStore remembers the record created under an idempotency key.
type ReplayStore interface {
	// Lookup decodes the remembered record into dst and reports whether one existed.
	Lookup(ctx context.Context, scope, key string, dst any) (bool, error)
	Remember(ctx context.Context, scope, key string, rec any) error
}
