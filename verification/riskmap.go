package verification

import (
	"context"
	"math"

	"github.com/apex/log"

	"go-firewatch/firms"
	"go-firewatch/geo"
	"go-firewatch/types"
)

// Risk-map scoring constants. Unlike the per-report verification score the
// aggregate has no upper cap: satellite reinforcement past 100 keeps its
// ordering information, since the map is a relative ranking signal.
const (
	reportBasePoints    = 50
	satelliteBasePoints = 30
)

// ComputeRiskMap builds the de-duplicated set of risk points from the union
// of active user reports and current satellite detections. The result is
// unordered and recomputed fresh on every call; nothing is cached or
// persisted. A satellite fetch failure degrades to a report-only map rather
// than failing the request.
func (e *Engine) ComputeRiskMap(ctx context.Context) ([]types.RiskPoint, error) {
	reports, err := e.store.ListByStatus(ctx, types.StatusConfirmed, types.StatusUnverified)
	if err != nil {
		return nil, err
	}

	riskPoints := make([]types.RiskPoint, 0, len(reports))
	for _, report := range reports {
		reliability := 1.0
		if report.Status != types.StatusConfirmed {
			reliability = report.Confidence / 100
		}

		riskPoints = append(riskPoints, types.RiskPoint{
			Lat:       report.Lat,
			Long:      report.Long,
			RiskScore: math.Round(reportBasePoints * reliability),
			Factors: types.RiskFactors{
				UserReports:       1,
				FIRMSData:         0,
				WeatherMultiplier: 1,
			},
		})
	}

	result, err := e.feed.Fetch(ctx, types.SourceVIIRS, firms.Window24h, nil)
	if err != nil {
		log.Warnf("risk map: satellite fetch failed, building map from user reports only: %v", err)
		return riskPoints, nil
	}

	for _, point := range result.Points {
		if idx := findNearbyRiskPoint(riskPoints, point.Lat, point.Long); idx >= 0 {
			// Satellite confirmation of an existing hotspot.
			riskPoints[idx].RiskScore += satelliteBasePoints
			riskPoints[idx].Factors.FIRMSData++
			continue
		}
		riskPoints = append(riskPoints, types.RiskPoint{
			Lat:       point.Lat,
			Long:      point.Long,
			RiskScore: satelliteBasePoints,
			Factors: types.RiskFactors{
				UserReports:       0,
				FIRMSData:         1,
				WeatherMultiplier: 1,
			},
		})
	}

	return riskPoints, nil
}

// findNearbyRiskPoint returns the index of the first risk point within the
// strict ±0.01° dedup box of the coordinate, or -1.
func findNearbyRiskPoint(points []types.RiskPoint, lat, lng float64) int {
	for i := range points {
		if geo.WithinDedupRadius(points[i].Lat, points[i].Long, lat, lng) {
			return i
		}
	}
	return -1
}
