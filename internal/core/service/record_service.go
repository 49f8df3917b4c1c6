package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

// RecordService implements ports.RecordService on top of one RecordStore.
type RecordService[F, R any] struct {
	store    ports.RecordStore[R]
	assemble func(domain.Stamp, F) R
	stamper  Stamper
	replay   ports.ReplayStore
	log      zerolog.Logger
}

// NewRecordService wires a store with the constructor that turns a create
// shape into a stored record. replay may be nil, which disables
// idempotent replays.
func NewRecordService[F, R any](
	store ports.RecordStore[R],
	assemble func(domain.Stamp, F) R,
	stamper Stamper,
	replay ports.ReplayStore,
	log zerolog.Logger,
) *RecordService[F, R] {
	return &RecordService[F, R]{
		store:    store,
		assemble: assemble,
		stamper:  stamper,
		replay:   replay,
		log:      log.With().Str("collection", string(store.Collection())).Logger(),
	}
}

func (s *RecordService[F, R]) Create(ctx context.Context, idempotencyKey string, fields F) (*R, bool, error) {
	scope := string(s.store.Collection())

	if idempotencyKey != "" && s.replay != nil {
		var prev R
		found, err := s.replay.Lookup(ctx, scope, idempotencyKey, &prev)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("replay lookup failed, creating anyway")
		} else if found {
			s.log.Info().Str("idempotency_key", idempotencyKey).Msg("idempotent replay")
			return &prev, true, nil
		}
	}

	stamp := s.stamper.Stamp()
	rec := s.assemble(stamp, fields)

	if err := s.store.Insert(ctx, &rec); err != nil {
		s.log.Error().Err(err).Str("id", stamp.ID).Msg("failed to store record")
		return nil, false, err
	}

	if idempotencyKey != "" && s.replay != nil {
		if err := s.replay.Remember(ctx, scope, idempotencyKey, rec); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("failed to remember idempotency key")
		}
	}

	s.log.Info().Str("id", stamp.ID).Msg("record created")
	return &rec, false, nil
}

func (s *RecordService[F, R]) List(ctx context.Context) ([]R, error) {
	recs, err := s.store.List(ctx, ports.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.store.Collection(), err)
	}
	if recs == nil {
		recs = []R{}
	}
	return recs, nil
}

func (s *RecordService[F, R]) Get(ctx context.Context, id string) (*R, error) {
	return s.store.FindByID(ctx, id)
}
