package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"go-firewatch/firms"
	"go-firewatch/geo"
	"go-firewatch/types"
)

// GetFIRMS serves normalized satellite hotspots.
// Query: source=VIIRS|MODIS, window=24h|48h|7d, bbox=minLat,minLng,maxLat,maxLng.
func GetFIRMS(c *gin.Context, client *firms.Client) {
	source := types.FIRMSSource(strings.ToUpper(c.DefaultQuery("source", string(types.SourceVIIRS))))
	window := firms.Window(c.DefaultQuery("window", string(firms.Window24h)))

	var bbox *geo.Box
	if raw := c.Query("bbox"); raw != "" {
		parsed, err := parseBBox(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bbox must be minLat,minLng,maxLat,maxLng"})
			return
		}
		bbox = parsed
	}

	result, err := client.Fetch(c.Request.Context(), source, window, bbox)
	if err != nil {
		if errors.Is(err, firms.ErrFeedUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "satellite feed unavailable"})
			return
		}
		log.Errorf("FIRMS fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch FIRMS data"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseBBox(raw string) (*geo.Box, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.New("bbox needs four comma-separated values")
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	return &geo.Box{MinLat: vals[0], MinLng: vals[1], MaxLat: vals[2], MaxLng: vals[3]}, nil
}
