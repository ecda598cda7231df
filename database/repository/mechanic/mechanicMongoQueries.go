package mechanicRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"

	"go.uber.org/zap"
)

// Search runs the criteria filter and returns all matching mechanics.
func (r *MongoMechanicRepo) Search(ctx context.Context, criteria SearchCriteria) ([]models.Mechanic, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	defer r.warnIfSlow("search", time.Now(), zap.Any("filter", criteria.Filter()))

	cursor, err := r.coll.Find(ctx, criteria.Filter())
	if err != nil {
		return nil, fmt.Errorf("mechanic search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	mechanics := []models.Mechanic{}
	if err := cursor.All(ctx, &mechanics); err != nil {
		return nil, fmt.Errorf("failed to decode mechanics: %w", err)
	}
	return mechanics, nil
}
