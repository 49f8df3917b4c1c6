package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

// RecordStore implements ports.RecordStore[R] over one collection.
// Documents are keyed by the "id" field; MongoDB's own _id is left to the
// server and never read back.
type RecordStore[R any] struct {
	col     *mongo.Collection
	name    domain.Collection
	timeout time.Duration
}

// NewRecordStore binds a store to collection name in db. A non-positive
// timeout falls back to the package default.
func NewRecordStore[R any](db *mongo.Database, name domain.Collection, timeout time.Duration) *RecordStore[R] {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RecordStore[R]{col: db.Collection(string(name)), name: name, timeout: timeout}
}

func (s *RecordStore[R]) Collection() domain.Collection { return s.name }

// Insert appends rec. Duplicate ids are not detected.
func (s *RecordStore[R]) Insert(ctx context.Context, rec *R) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert %s: %w", s.name, err)
	}
	return nil
}

func (s *RecordStore[R]) List(ctx context.Context, limit int64) ([]R, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.name, err)
	}

	out := make([]R, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.name, err)
	}
	return out, nil
}

func (s *RecordStore[R]) FindByID(ctx context.Context, id string) (*R, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rec R
	if err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s %s: %w", s.name, id, err)
	}
	return &rec, nil
}

func (s *RecordStore[R]) Count(ctx context.Context, filter ports.Filter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.col.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.name, err)
	}
	return n, nil
}

// toBSON translates a ports.Filter into a query document. Values are encoded
// by the driver, so domain.Date becomes its YYYY-MM-DD string.
func toBSON(f ports.Filter) bson.D {
	q := bson.D{}
	for _, c := range f.Conditions {
		switch c.Op {
		case ports.OpGte:
			q = append(q, bson.E{Key: c.Field, Value: bson.D{{Key: "$gte", Value: c.Value}}})
		default:
			q = append(q, bson.E{Key: c.Field, Value: c.Value})
		}
	}
	return q
}
