package mechanicRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// prepare applies defaults, validates and stamps a record for insertion.
func prepare(m *models.Mechanic, now time.Time) error {
	m.Normalize()
	if err := m.Validate(); err != nil {
		return err
	}
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	return nil
}

// Create inserts a new mechanic document.
func (r *MongoMechanicRepo) Create(ctx context.Context, mechanic *models.Mechanic) error {
	if err := prepare(mechanic, time.Now().UTC()); err != nil {
		return err
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, mechanic); err != nil {
		return fmt.Errorf("failed to create mechanic: %w", err)
	}
	return nil
}

// InsertMany inserts all mechanics in a single bulk write. Nothing is written
// when any record fails validation.
func (r *MongoMechanicRepo) InsertMany(ctx context.Context, mechanics []models.Mechanic) (int, error) {
	if len(mechanics) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(mechanics))
	for i := range mechanics {
		if err := prepare(&mechanics[i], now); err != nil {
			return 0, err
		}
		docs = append(docs, mechanics[i])
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert mechanics: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Count returns the number of mechanic documents.
func (r *MongoMechanicRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count mechanics: %w", err)
	}
	return n, nil
}
