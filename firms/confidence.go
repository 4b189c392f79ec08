package firms

import (
	"strconv"
	"strings"

	"go-firewatch/types"
)

// ConfidenceLevel is a categorical detection confidence as reported by MODIS
// (and occasionally VIIRS) rows.
type ConfidenceLevel int

const (
	LevelUnknown ConfidenceLevel = iota
	LevelLow
	LevelNominal
	LevelHigh
)

// Confidence is the raw confidence field of one FIRMS row, parsed once into a
// tagged value: either a numeric percentage or a categorical level. The two
// encodings are mixed across sensor families, so all trust-boundary parsing
// happens here and nowhere else.
type Confidence struct {
	numeric     float64
	level       ConfidenceLevel
	categorical bool
}

// ParseConfidence interprets a raw confidence cell for the given sensor family.
//
// VIIRS rows usually carry a numeric percent but may use single-letter or word
// codes (l/low, n/nominal, h/high). MODIS rows carry categorical text matched
// by substring, with a final numeric fallback. Anything unparseable becomes a
// numeric zero.
func ParseConfidence(raw string, source types.FIRMSSource) Confidence {
	val := strings.ToLower(strings.TrimSpace(raw))

	if source == types.SourceVIIRS {
		if num, err := strconv.ParseFloat(val, 64); err == nil {
			return Confidence{numeric: num}
		}
		switch val {
		case "l", "low":
			return Confidence{level: LevelLow, categorical: true}
		case "n", "nominal":
			return Confidence{level: LevelNominal, categorical: true}
		case "h", "high":
			return Confidence{level: LevelHigh, categorical: true}
		}
		return Confidence{}
	}

	// MODIS: categorical text first, numeric as a last resort.
	switch {
	case strings.Contains(val, "high"):
		return Confidence{level: LevelHigh, categorical: true}
	case strings.Contains(val, "nominal"):
		return Confidence{level: LevelNominal, categorical: true}
	case strings.Contains(val, "low"):
		return Confidence{level: LevelLow, categorical: true}
	}
	if num, err := strconv.ParseFloat(val, 64); err == nil {
		return Confidence{numeric: num}
	}
	return Confidence{}
}

// Normalize converts the confidence to a 0-100 percentage. Categorical levels
// map to 30/60/90; numeric values pass through clamped, so normalizing an
// already-normalized percentage is a no-op.
func (c Confidence) Normalize() float64 {
	if c.categorical {
		switch c.level {
		case LevelLow:
			return 30
		case LevelNominal:
			return 60
		case LevelHigh:
			return 90
		}
		return 0
	}
	if c.numeric < 0 {
		return 0
	}
	if c.numeric > 100 {
		return 100
	}
	return c.numeric
}
