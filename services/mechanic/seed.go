package mechanic

import (
	"context"
	"fmt"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"

	"go.uber.org/zap"
)

// SampleMechanics returns the fixed demo data set, freshly allocated.
func SampleMechanics() []models.Mechanic {
	sample := func(name, phone string, rating float64, services []string, lat, lng float64, open bool, address, street string) models.Mechanic {
		return models.Mechanic{
			Name:     name,
			Phone:    phone,
			Rating:   &rating,
			Services: services,
			Lat:      &lat,
			Lng:      &lng,
			Open:     &open,
			Address:  address,
			City:     "Chennai",
			Street:   street,
		}
	}
	return []models.Mechanic{
		sample("QuickFix Motors", "+919876543210", 4.7, []string{"flat_tire", "battery", "fuel"}, 13.0827, 80.2707, true, "Anna Salai", "Anna Salai"),
		sample("Highway Assist", "+919111223344", 4.5, []string{"towing", "engine", "battery"}, 13.0012, 80.2566, true, "ECR Road", "ECR"),
		sample("City Tyres & Tow", "+919555666777", 4.3, []string{"flat_tire", "towing"}, 12.9968, 80.2211, false, "Old Mahabalipuram Rd", "OMR"),
		sample("Mega Service Hub", "+919333222111", 4.8, []string{"engine", "battery", "fuel", "flat_tire"}, 13.0500, 80.2655, true, "Mount Road", "Mount Road"),
		sample("Rapid Road Rescue", "+919700112233", 4.2, []string{"fuel", "battery"}, 13.0700, 80.3000, true, "Raja St", "Raja St"),
		sample("Coastal Mechanics", "+919600445566", 4.6, []string{"engine", "flat_tire"}, 13.1200, 80.2500, true, "Beach Road", "Beach Road"),
	}
}

// Seed inserts the sample data set when the collection is empty.
func (s *DefaultMechanicService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count mechanics: %w", err)
	}
	if count > 0 {
		s.Logger.Info("seed skipped, collection not empty", zap.Int64("count", count))
		return &SeedResult{Seeded: false, Message: "Already has data"}, nil
	}

	inserted, err := s.Repo.InsertMany(ctx, SampleMechanics())
	if err != nil {
		return nil, fmt.Errorf("failed to insert sample mechanics: %w", err)
	}
	s.Logger.Info("sample mechanics seeded", zap.Int("count", inserted))
	return &SeedResult{Seeded: true, Count: inserted}, nil
}
