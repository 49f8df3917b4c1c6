package ports

import (
	"context"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// ListLimit caps every list query.
const ListLimit int64 = 1000

// Op is the comparison applied by a Condition.
type Op int

const (
	OpEq  Op = iota // field == value
	OpGte           // field >= value
)

// Condition matches one field of a stored document.
type Condition struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Condition  { return Condition{Field: field, Op: OpEq, Value: value} }
func Gte(field string, value any) Condition { return Condition{Field: field, Op: OpGte, Value: value} }

// Filter is a conjunction of conditions. The zero Filter matches everything.
type Filter struct {
	Conditions []Condition
}

func Where(conds ...Condition) Filter { return Filter{Conditions: conds} }

// Counter counts documents of one collection matching a filter.
type Counter interface {
	Count(ctx context.Context, filter Filter) (int64, error)
}

// RecordStore is the persistence gateway for one collection.
// It holds no cache and does not retry; Insert does not check for
// duplicate identifiers.
type RecordStore[R any] interface {
	Counter
	Collection() domain.Collection
	Insert(ctx context.Context, rec *R) error
	// List returns at most limit records in unspecified order.
	List(ctx context.Context, limit int64) ([]R, error)
	// FindByID returns domain.ErrNotFound when no record has the id.
	FindByID(ctx context.Context, id string) (*R, error)
}
