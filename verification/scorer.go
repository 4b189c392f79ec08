// Package verification aggregates the four independent evidence signals of a
// fire report (ML image confidence, satellite confirmation, crowd
// corroboration, weather risk) into one bounded score and a discrete ranger
// recommendation, and builds the aggregate risk map.
package verification

import (
	"math"

	"go-firewatch/types"
)

// Fixed scoring weights. Configurability belongs to the admin layer, not here.
const (
	mlWeight        = 0.4
	satellitePoints = 30
	crowdPoints     = 20
	weatherExtreme  = 15
	weatherHigh     = 10

	confirmThreshold = 70
	monitorThreshold = 40
)

// Recommendation is the actionable tier a ranger sees next to the score.
type Recommendation string

const (
	RecommendConfirm Recommendation = "CONFIRM FIRE"
	RecommendMonitor Recommendation = "MONITOR"
	RecommendReject  Recommendation = "REJECT"
)

// Score composes the verification score for one report. It is a pure function
// of its four inputs: identical inputs always produce an identical breakdown.
//
//   - mlConfidence is the stored ML image confidence (0-100, absent = 0)
//   - satelliteCount is the number of FIRMS hotspots near the report
//   - crowdCount is the number of corroborating nearby user reports
//   - risk is the categorical weather risk at the report location
func Score(mlConfidence float64, satelliteCount, crowdCount int, risk types.FireRisk) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		ML: mlConfidence * mlWeight,
	}
	if satelliteCount >= 1 {
		b.Satellite = satellitePoints
	}
	if crowdCount >= 1 {
		b.Crowd = crowdPoints
	}
	switch risk {
	case types.RiskExtreme:
		b.Weather = weatherExtreme
	case types.RiskHigh:
		b.Weather = weatherHigh
	}

	total := math.Round(b.ML + b.Satellite + b.Crowd + b.Weather)
	if total > 100 {
		total = 100
	}
	b.Total = int(total)
	return b
}

// Recommend classifies a total score into its tier. Boundaries are exclusive:
// exactly 70 is MONITOR, exactly 40 is REJECT.
func Recommend(total int) Recommendation {
	switch {
	case total > confirmThreshold:
		return RecommendConfirm
	case total > monitorThreshold:
		return RecommendMonitor
	}
	return RecommendReject
}
