package handlers

import (
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"go-firewatch/weather"
)

// GetWeather serves a weather snapshot with the derived fire risk.
// Query: lat=...&lng=...
func GetWeather(c *gin.Context, client *weather.Client) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng required"})
		return
	}

	data, err := client.Get(c.Request.Context(), lat, lng)
	if err != nil {
		log.Errorf("Weather lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, data)
}
