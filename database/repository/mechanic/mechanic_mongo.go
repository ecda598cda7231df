package mechanicRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// slowQueryThreshold is the duration above which a query is logged as slow.
const slowQueryThreshold = 500 * time.Millisecond

// CollectionName is the MongoDB collection holding mechanic documents.
const CollectionName = "mechanics"

// MongoMechanicRepo implements MechanicRepository using MongoDB.
type MongoMechanicRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongoMechanicRepo creates a MechanicRepository on the "mechanics"
// collection of db. Index creation failures are logged and otherwise ignored.
func NewMongoMechanicRepo(db *mongo.Database, logger *zap.Logger) MechanicRepository {
	repo := &MongoMechanicRepo{coll: db.Collection(CollectionName), logger: logger}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create mechanic indexes", zap.Error(err))
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoMechanicRepo) warnIfSlow(op string, started time.Time, fields ...zap.Field) {
	elapsed := time.Since(started)
	if elapsed < slowQueryThreshold {
		return
	}
	r.logger.Warn("slow mechanic query",
		append(fields, zap.String("op", op), zap.Duration("elapsed", elapsed))...)
}

// ensureIndexes creates indexes for the fields used by the base filter.
func (r *MongoMechanicRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "services", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
