package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements only the commands ReplayStore issues; any other call
// panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

type record struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func TestReplayKey(t *testing.T) {
	assert.Equal(t, "idempotency:funcionarios:abc-123", replayKey("funcionarios", "abc-123"))
}

func TestReplayStore_Miss(t *testing.T) {
	s := NewReplayStore(newFakeRedis(), time.Hour)

	var got record
	found, err := s.Lookup(context.Background(), "funcoes", "k1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReplayStore_RememberThenLookup(t *testing.T) {
	fake := newFakeRedis()
	s := NewReplayStore(fake, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "funcoes", "k1", record{ID: "r-1", Nome: "Porteiro"}))
	assert.Equal(t, time.Hour, fake.ttls["idempotency:funcoes:k1"])

	var got record
	found, err := s.Lookup(ctx, "funcoes", "k1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{ID: "r-1", Nome: "Porteiro"}, got)
}

func TestReplayStore_FirstRecordWins(t *testing.T) {
	s := NewReplayStore(newFakeRedis(), 0)
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "funcoes", "k1", record{ID: "first"}))
	require.NoError(t, s.Remember(ctx, "funcoes", "k1", record{ID: "second"}))

	var got record
	_, err := s.Lookup(ctx, "funcoes", "k1", &got)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)
}

func TestReplayStore_ScopesAreIndependent(t *testing.T) {
	s := NewReplayStore(newFakeRedis(), 0)
	ctx := context.Background()

	require.NoError(t, s.Remember(ctx, "funcoes", "k1", record{ID: "r-1"}))

	var got record
	found, err := s.Lookup(ctx, "empresas", "k1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReplayStore_LookupError(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = errors.New("connection refused")
	s := NewReplayStore(fake, 0)

	var got record
	_, err := s.Lookup(context.Background(), "funcoes", "k1", &got)
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewReplayStore_DefaultTTL(t *testing.T) {
	assert.Equal(t, defaultReplayTTL, NewReplayStore(newFakeRedis(), 0).ttl)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Addr: "localhost:6379"}.Enabled())
}
