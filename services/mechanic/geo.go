package mechanic

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for distances.
const EarthRadiusKm = 6371.0

// Point is a coordinate pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Point) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1, lat2 := toRad(a.Lat), toRad(b.Lat)

	sLat, sLng := math.Sin(dLat/2), math.Sin(dLng/2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLng*sLng
	// Rounding can push h marginally past 1 for antipodal points.
	h = math.Min(1, h)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// ParseCoordinates returns the searcher's point when both values parse as
// finite numbers.
func ParseCoordinates(lat, lng string) (Point, bool) {
	la, ok := parseFinite(lat)
	if !ok {
		return Point{}, false
	}
	ln, ok := parseFinite(lng)
	if !ok {
		return Point{}, false
	}
	return Point{Lat: la, Lng: ln}, true
}

func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
