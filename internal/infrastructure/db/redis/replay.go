package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReplayTTL = 24 * time.Hour

// ReplayStore keeps the JSON form of each record created under an
// Idempotency-Key so a retried POST returns the first record.
// Key format: idempotency:<collection>:<key>
type ReplayStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewReplayStore wraps client. A non-positive ttl falls back to 24h.
func NewReplayStore(client redis.Cmdable, ttl time.Duration) *ReplayStore {
	if ttl <= 0 {
		ttl = defaultReplayTTL
	}
	return &ReplayStore{client: client, ttl: ttl}
}

func (s *ReplayStore) Lookup(ctx context.Context, scope, key string, dst any) (bool, error) {
	raw, err := s.client.Get(ctx, replayKey(scope, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("replay lookup: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("replay decode: %w", err)
	}
	return true, nil
}

// Remember stores rec unless the key is already taken; the first record wins.
func (s *ReplayStore) Remember(ctx context.Context, scope, key string, rec any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("replay encode: %w", err)
	}
	if err := s.client.SetNX(ctx, replayKey(scope, key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("replay remember: %w", err)
	}
	return nil
}

func replayKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
