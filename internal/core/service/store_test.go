package service

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type memStore[R any] struct {
	mu        sync.Mutex
	name      domain.Collection
	recs      []R
	idOf      func(R) string
	insertErr error
	countErr  error
	lastLimit int64
}

func newMemStore[R any](name domain.Collection, idOf func(R) string) *memStore[R] {
	return &memStore[R]{name: name, idOf: idOf}
}

func (s *memStore[R]) Collection() domain.Collection { return s.name }

func (s *memStore[R]) Insert(_ context.Context, rec *R) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *memStore[R]) List(_ context.Context, limit int64) ([]R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit
	n := int64(len(s.recs))
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]R, n)
	copy(out, s.recs[:n])
	return out, nil
}

func (s *memStore[R]) FindByID(_ context.Context, id string) (*R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recs {
		if s.idOf(r) == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Count evaluates the filter against the JSON form of each record, which
// matches the stored BSON field names and date strings.
func (s *memStore[R]) Count(_ context.Context, f ports.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	var n int64
	for _, r := range s.recs {
		if matches(toMap(r), f) {
			n++
		}
	}
	return n, nil
}

func toMap(v any) map[string]any {
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

func jsonValue(v any) any {
	b, _ := json.Marshal(v)
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}

func matches(doc map[string]any, f ports.Filter) bool {
	for _, c := range f.Conditions {
		got, want := doc[c.Field], jsonValue(c.Value)
		switch c.Op {
		case ports.OpEq:
			if !reflect.DeepEqual(got, want) {
				return false
			}
		case ports.OpGte:
			gs, ok1 := got.(string)
			ws, ok2 := want.(string)
			if !ok1 || !ok2 || gs < ws {
				return false
			}
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Stub replay store
// ---------------------------------------------------------------------------

type stubReplay struct {
	saved     map[string][]byte
	lookupErr error
	remembers int
}

func newStubReplay() *stubReplay { return &stubReplay{saved: map[string][]byte{}} }

func (r *stubReplay) Lookup(_ context.Context, scope, key string, dst any) (bool, error) {
	if r.lookupErr != nil {
		return false, r.lookupErr
	}
	b, ok := r.saved[scope+":"+key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (r *stubReplay) Remember(_ context.Context, scope, key string, rec any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	r.saved[scope+":"+key] = b
	r.remembers++
	return nil
}
