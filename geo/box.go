// Package geo answers fixed-radius proximity queries using a rectangular
// degree-box approximation. Distances are never geodesic: corroboration radii
// are small (roughly 1-10 km) where the corner distortion of a square search
// region is negligible for the app's tropical/temperate operating regions.
package geo

// Radii in degrees of latitude/longitude. Callers pick the constant matching
// their use case rather than passing kilometers.
const (
	// CorroborationRadiusDeg (~5 km) bounds "nearby user reports".
	CorroborationRadiusDeg = 0.045
	// SatelliteRadiusDeg (~10 km) bounds "nearby satellite hotspots".
	SatelliteRadiusDeg = 0.09
	// DedupRadiusDeg (~1 km) decides whether a satellite point reinforces an
	// existing risk point instead of creating a new one.
	DedupRadiusDeg = 0.01
)

// Box is an axis-aligned bounding box in degrees.
type Box struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// BoxAround builds the square search region of the given radius centered on a
// point.
func BoxAround(lat, lng, radiusDeg float64) Box {
	return Box{
		MinLat: lat - radiusDeg,
		MinLng: lng - radiusDeg,
		MaxLat: lat + radiusDeg,
		MaxLng: lng + radiusDeg,
	}
}

// Contains reports membership with inclusive bounds on all four edges.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// WithinDedupRadius checks both axes independently with strict inequality.
// This is deliberately asymmetric from Box.Contains: the risk-map
// reinforcement check has always used < rather than <=.
func WithinDedupRadius(aLat, aLng, bLat, bLng float64) bool {
	return abs(aLat-bLat) < DedupRadiusDeg && abs(aLng-bLng) < DedupRadiusDeg
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
