package mechanic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	mechanicRepo "github.com/Mareeswari-2005/Sara-The-road-assist/database/repository/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/models"
)

// unknownDistanceKm ranks records without coordinates after every located one.
const unknownDistanceKm = 1e9

// patternSpecials are stripped from search words so they never form a pattern.
var patternSpecials = strings.NewReplacer(
	".", "", "*", "", "+", "", "?", "", "^", "", "$", "",
	"{", "", "}", "", "(", "", ")", "", "|", "", "[", "", "]", "", `\`, "",
)

// BuildCriteria turns search parameters into repository criteria.
func BuildCriteria(params SearchParams) mechanicRepo.SearchCriteria {
	criteria := mechanicRepo.SearchCriteria{
		Service: strings.TrimSpace(params.Service),
		City:    strings.TrimSpace(params.City),
	}
	if params.Q == "" {
		return criteria
	}
	for _, word := range strings.Fields(params.Q) {
		if w := patternSpecials.Replace(word); w != "" {
			criteria.Terms = append(criteria.Terms, w)
		}
	}
	if len(criteria.Terms) == 0 {
		criteria.Raw = params.Q
	}
	return criteria
}

// Search runs a directory search, annotating and ordering results by
// distance when the caller supplied a location.
func (s *DefaultMechanicService) Search(ctx context.Context, params SearchParams) ([]models.MechanicResult, error) {
	mechanics, err := s.Repo.Search(ctx, BuildCriteria(params))
	if err != nil {
		return nil, fmt.Errorf("failed to search mechanics: %w", err)
	}

	origin, located := ParseCoordinates(params.Lat, params.Lng)
	results := make([]models.MechanicResult, len(mechanics))
	for i, m := range mechanics {
		results[i] = models.MechanicResult{Mechanic: m, Located: located}
		if located && m.HasLocation() {
			d := Haversine(origin, Point{Lat: *m.Lat, Lng: *m.Lng})
			results[i].Distance = &d
		}
	}

	sortOrder := strings.TrimSpace(params.Sort)
	switch {
	case located && (sortOrder == SortDistance || sortOrder == ""):
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceOr(unknownDistanceKm) < results[j].DistanceOr(unknownDistanceKm)
		})
	case !located && sortOrder == SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RatingValue() > results[j].RatingValue()
		})
	}
	return results, nil
}
