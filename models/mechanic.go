// File: models/mechanic.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRating is applied to records inserted without a rating.
const DefaultRating = 4.0

// Mechanic is a roadside-assistance provider listed in the directory.
type Mechanic struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`     // Assigned by the store on insert.
	Name      string             `bson:"name" json:"name" validate:"required"`   // Business name.
	Phone     string             `bson:"phone" json:"phone" validate:"required"` // Contact number, e.g. "+919876543210".
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	City      string             `bson:"city,omitempty" json:"city,omitempty"`
	Street    string             `bson:"street,omitempty" json:"street,omitempty"`
	Services  []string           `bson:"services" json:"services"`                   // e.g. ["flat_tire", "battery"]
	Rating    *float64           `bson:"rating,omitempty" json:"rating,omitempty"`   // Unbounded; defaults to 4.0.
	Lat       *float64           `bson:"lat,omitempty" json:"lat,omitempty"`         // Latitude in degrees.
	Lng       *float64           `bson:"lng,omitempty" json:"lng,omitempty"`         // Longitude in degrees.
	Open      *bool              `bson:"open,omitempty" json:"open,omitempty"`       // Defaults to true.
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
}

// Normalize trims the required fields, drops duplicate service tags and
// fills in the default rating and open flag.
func (m *Mechanic) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = strings.TrimSpace(m.Phone)

	seen := make(map[string]struct{}, len(m.Services))
	services := make([]string, 0, len(m.Services))
	for _, s := range m.Services {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		services = append(services, s)
	}
	m.Services = services

	if m.Rating == nil {
		r := DefaultRating
		m.Rating = &r
	}
	if m.Open == nil {
		open := true
		m.Open = &open
	}
}

// HasLocation reports whether both coordinates are set.
func (m Mechanic) HasLocation() bool {
	return m.Lat != nil && m.Lng != nil
}

// RatingValue returns the rating, or 0 when it was never stored.
func (m Mechanic) RatingValue() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}
