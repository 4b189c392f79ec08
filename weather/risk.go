package weather

import "go-firewatch/types"

// CalculateFireRisk derives a categorical fire risk from current conditions.
// Hotter, drier and windier each add up to 3 points; the summed score maps to
// the four risk levels consumed by the verification scorer.
func CalculateFireRisk(temperature, humidity, windSpeed int) types.FireRisk {
	score := 0

	switch {
	case temperature > 35:
		score += 3
	case temperature > 30:
		score += 2
	case temperature > 25:
		score += 1
	}

	switch {
	case humidity < 30:
		score += 3
	case humidity < 50:
		score += 2
	case humidity < 70:
		score += 1
	}

	switch {
	case windSpeed > 40:
		score += 3
	case windSpeed > 25:
		score += 2
	case windSpeed > 15:
		score += 1
	}

	switch {
	case score >= 7:
		return types.RiskExtreme
	case score >= 5:
		return types.RiskHigh
	case score >= 3:
		return types.RiskModerate
	}
	return types.RiskLow
}

var cardinalDirections = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// windDirection maps a bearing in degrees onto the eight cardinal directions.
func windDirection(degrees float64) string {
	idx := int(degrees/45+0.5) % 8
	if idx < 0 {
		idx += 8
	}
	return cardinalDirections[idx]
}
