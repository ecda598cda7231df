package models

import (
	"github.com/goccy/go-json"
)

// MechanicResult is a search hit. Located results carry a distance in km,
// which is nil when the record itself has no coordinates.
type MechanicResult struct {
	Mechanic
	Distance *float64
	Located  bool
}

type locatedMechanic struct {
	Mechanic
	Distance *float64 `json:"distance"`
}

// MarshalJSON emits the record fields, plus "distance" for located results.
func (r MechanicResult) MarshalJSON() ([]byte, error) {
	if !r.Located {
		return json.Marshal(r.Mechanic)
	}
	return json.Marshal(locatedMechanic{Mechanic: r.Mechanic, Distance: r.Distance})
}

// DistanceOr returns the distance, or fallback when it is unknown.
func (r MechanicResult) DistanceOr(fallback float64) float64 {
	if r.Distance == nil {
		return fallback
	}
	return *r.Distance
}
