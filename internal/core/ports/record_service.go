package ports

import "context"

// RecordService exposes create/list/get for one entity kind, where F is the
// create shape and R the stored shape.
type RecordService[F, R any] interface {
	// Create stamps and stores fields. When idempotencyKey is non-empty and a
	// record was already created under it, that record is returned with
	// replayed=true and nothing is inserted.
	Create(ctx context.Context, idempotencyKey string, fields F) (rec *R, replayed bool, err error)
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (*R, error)
}
