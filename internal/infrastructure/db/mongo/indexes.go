package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// EnsureIndexes creates the lookup indexes every collection relies on.
// The id index is not unique; identifiers are assumed collision-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	extra := map[domain.Collection][]mongo.IndexModel{
		domain.CollectionAttendance: {
			{Keys: bson.D{{Key: "data", Value: 1}, {Key: "presente", Value: 1}}},
		},
		domain.CollectionCertificates: {
			{Keys: bson.D{{Key: "data_retorno_prevista", Value: 1}}},
		},
	}

	for _, name := range domain.Collections() {
		models := append([]mongo.IndexModel{{Keys: bson.D{{Key: "id", Value: 1}}}}, extra[name]...)
		if _, err := db.Collection(string(name)).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes %s: %w", name, err)
		}
	}
	return nil
}
