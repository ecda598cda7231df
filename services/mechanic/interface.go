package mechanic

import (
	"context"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"
)

// MechanicService is the directory's business surface.
type MechanicService interface {
	Search(ctx context.Context, params SearchParams) ([]models.MechanicResult, error)
	Create(ctx context.Context, m models.Mechanic) (*models.Mechanic, error)
	Seed(ctx context.Context) (*SeedResult, error)
}

// SearchParams are the raw query parameters of a search request.
type SearchParams struct {
	Q       string `form:"q"`
	Service string `form:"service"`
	City    string `form:"city"`
	Lat     string `form:"lat"`
	Lng     string `form:"lng"`
	Sort    string `form:"sort"`
}

// Sort orders accepted by the "sort" parameter.
const (
	SortDistance = "distance"
	SortRating   = "rating"
)

// SeedResult reports the outcome of a seed request.
type SeedResult struct {
	Seeded  bool   `json:"seeded"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
