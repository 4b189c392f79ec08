package handlers

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"googlemaps.github.io/maps"

	"go-firewatch/db"
	"go-firewatch/geocode"
	"go-firewatch/types"
	"go-firewatch/weather"
)

type createReportRequest struct {
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address"`
	} `json:"location" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"` // ML image confidence from the on-device/remote model
}

// CreateReport persists a new citizen report. The weather snapshot and the
// reverse-geocoded address are best-effort enrichments: their failure never
// blocks the submission.
func CreateReport(c *gin.Context, store *db.Store, weatherClient *weather.Client, mapsClient *maps.Client) {
	var req createReportRequest
	if err := c.BindJSON(&req); err != nil {
		log.Errorf("Failed to bind /fire-reports body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
		return
	}

	report := &types.FireReport{
		UserID:      req.UserID,
		UserName:    req.UserName,
		Lat:         req.Location.Latitude,
		Long:        req.Location.Longitude,
		Address:     req.Location.Address,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Confidence:  req.Confidence,
	}

	if snapshot, err := weatherClient.Get(c.Request.Context(), report.Lat, report.Long); err != nil {
		log.Warnf("Weather snapshot failed for new report: %v", err)
	} else {
		report.Weather = snapshot
	}

	if report.Address == "" && mapsClient != nil {
		if address, err := geocode.ReverseGeocode(c.Request.Context(), mapsClient, report.Lat, report.Long); err != nil {
			log.Warnf("Reverse geocoding failed for new report: %v", err)
		} else {
			report.Address = address
		}
	}

	saved, err := store.CreateReport(c.Request.Context(), report)
	if err != nil {
		log.Errorf("Failed to save report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create fire report"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListReports returns every report, newest first.
func ListReports(c *gin.Context, store *db.Store) {
	reports, err := store.List(c.Request.Context())
	if err != nil {
		log.Errorf("Failed to list reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch fire reports"})
		return
	}
	if reports == nil {
		reports = []types.FireReport{}
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport returns one report by id.
func GetReport(c *gin.Context, store *db.Store) {
	report, err := store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetReportLogs returns the audit trail of one report in chronological order.
func GetReportLogs(c *gin.Context, store *db.Store) {
	entries, err := store.ListVerificationLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Errorf("Failed to list verification logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch verification logs"})
		return
	}
	if entries == nil {
		entries = []types.VerificationLog{}
	}
	c.JSON(http.StatusOK, entries)
}
