package firms

import (
	"fmt"
	"strconv"
	"strings"

	"go-firewatch/types"
)

// parseCSV converts a raw FIRMS CSV export into normalized points. The feed is
// best-effort: rows with a column-count mismatch or unparseable coordinates
// are dropped silently rather than failing the whole fetch.
func parseCSV(csv string, source types.FIRMSSource) []types.FIRMSPoint {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(csv, "\r\n", "\n")), "\n")
	if len(lines) <= 1 {
		return nil
	}

	header := strings.Split(lines[0], ",")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}

	latIdx := col("latitude")
	lonIdx := col("longitude")
	confIdx := col("confidence")
	brightIdx := col("brightness")
	dateIdx := col("acq_date")
	timeIdx := col("acq_time")
	satIdx := col("satellite")
	instIdx := col("instrument")
	frpIdx := col("frp")

	if latIdx < 0 || lonIdx < 0 {
		return nil
	}

	var points []types.FIRMSPoint
	for i := 1; i < len(lines); i++ {
		row := strings.Split(lines[i], ",")
		if len(row) != len(header) {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
		if errLat != nil || errLon != nil {
			continue
		}

		p := types.FIRMSPoint{
			Lat:    lat,
			Long:   lon,
			Source: source,
		}
		if confIdx >= 0 {
			p.Confidence = ParseConfidence(row[confIdx], source).Normalize()
		}
		if brightIdx >= 0 {
			p.Brightness, _ = strconv.ParseFloat(strings.TrimSpace(row[brightIdx]), 64)
		}
		if frpIdx >= 0 {
			p.FRP, _ = strconv.ParseFloat(strings.TrimSpace(row[frpIdx]), 64)
		}
		if dateIdx >= 0 {
			p.AcqDate = strings.TrimSpace(row[dateIdx])
		}
		if timeIdx >= 0 {
			p.AcqTime = strings.TrimSpace(row[timeIdx])
		}
		if satIdx >= 0 {
			p.Satellite = strings.TrimSpace(row[satIdx])
		}
		if instIdx >= 0 {
			p.Instrument = strings.TrimSpace(row[instIdx])
		}
		p.ID = fmt.Sprintf("%s-%d-%s-%s", source, i, p.AcqDate, p.AcqTime)

		points = append(points, p)
	}
	return points
}
