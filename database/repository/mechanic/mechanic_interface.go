package mechanicRepo

import (
	"context"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"
)

// MechanicRepository defines methods for mechanic data access.
type MechanicRepository interface {
	// Search returns every mechanic matching the criteria, in store order.
	Search(ctx context.Context, criteria SearchCriteria) ([]models.Mechanic, error)
	// Create validates and inserts a single mechanic, setting its ID and CreatedAt.
	Create(ctx context.Context, mechanic *models.Mechanic) error
	// InsertMany validates and inserts a batch in one operation and returns the count inserted.
	InsertMany(ctx context.Context, mechanics []models.Mechanic) (int, error)
	// Count returns the number of stored mechanics.
	Count(ctx context.Context) (int64, error)
}
