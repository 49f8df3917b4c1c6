package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamper_Stamp(t *testing.T) {
	fixed := time.Date(2026, 3, 4, 12, 30, 15, 123456789, time.FixedZone("BRT", -3*3600))
	s := Stamper{NewID: func() string { return "fixed-id" }, Now: func() time.Time { return fixed }}

	stamp := s.Stamp()
	assert.Equal(t, "fixed-id", stamp.ID)
	assert.Equal(t, time.UTC, stamp.CreatedAt.Location())
	assert.Equal(t, 123000000, stamp.CreatedAt.Nanosecond())
	assert.True(t, stamp.CreatedAt.Equal(fixed.Truncate(time.Millisecond)))
}

func TestNewStamper_UsesRandomUUIDs(t *testing.T) {
	s := NewStamper()

	a, b := s.Stamp(), s.Stamp()
	require.NotEqual(t, a.ID, b.ID)

	parsed, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
