package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// Stamper assigns identity and creation time to new records.
// NewID and Now are swappable in tests.
type Stamper struct {
	NewID func() string
	Now   func() time.Time
}

// NewStamper returns a Stamper backed by random (v4) UUIDs and the wall clock.
func NewStamper() Stamper {
	return Stamper{
		NewID: func() string { return uuid.NewString() },
		Now:   time.Now,
	}
}

// Stamp returns a fresh identity. CreatedAt is UTC truncated to milliseconds,
// the precision MongoDB keeps, so a stored record reads back unchanged.
func (s Stamper) Stamp() domain.Stamp {
	return domain.Stamp{
		ID:        s.NewID(),
		CreatedAt: s.Now().UTC().Truncate(time.Millisecond),
	}
}
