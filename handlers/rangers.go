package handlers

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-firewatch/summarization"
	"go-firewatch/types"
	"go-firewatch/verification"
)

// GetReportContext assembles the full verification context for one report:
// the report, corroborating evidence, the score breakdown and the tier, plus
// an optional OpenAI briefing when a client is configured.
func GetReportContext(c *gin.Context, engine *verification.Engine, openaiClient *openai.Client) {
	vc, err := engine.ComputeContext(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondReportError(c, err)
		return
	}

	briefing := ""
	if openaiClient != nil {
		if text, err := summarization.GenerateBriefing(c.Request.Context(), openaiClient, vc); err != nil {
			log.Warnf("Briefing generation failed for report %s: %v", vc.Report.ID, err)
		} else {
			briefing = text
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"report":            vc.Report,
		"nearbyReports":     vc.NearbyReports,
		"firmsData":         vc.FIRMSPoints,
		"weather":           vc.Weather,
		"verificationScore": vc.Score,
		"recommendation":    vc.Recommendation,
		"briefing":          briefing,
	})
}

type updateStatusRequest struct {
	Status       types.ReportStatus `json:"status" binding:"required"`
	Notes        string             `json:"notes"`
	VerifierID   string             `json:"verifierId"`
	VerifierName string             `json:"verifierName"`
}

// UpdateReportStatus applies a ranger status transition and writes the audit
// entry.
func UpdateReportStatus(c *gin.Context, engine *verification.Engine) {
	var req updateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		log.Errorf("Failed to bind status update body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status payload"})
		return
	}

	updated, err := engine.ApplyStatusTransition(
		c.Request.Context(),
		c.Param("id"),
		req.Status,
		req.Notes,
		verification.Verifier{ID: req.VerifierID, Name: req.VerifierName},
	)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

type deleteReportRequest struct {
	VerifierID   string `json:"verifierId"`
	VerifierName string `json:"verifierName"`
}

// DeleteReport permanently removes a report after writing the terminal audit
// entry.
func DeleteReport(c *gin.Context, engine *verification.Engine) {
	var req deleteReportRequest
	// Body is optional; an empty verifier still produces a valid audit entry.
	_ = c.ShouldBindJSON(&req)

	err := engine.DeleteReport(
		c.Request.Context(),
		c.Param("id"),
		verification.Verifier{ID: req.VerifierID, Name: req.VerifierName},
	)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetRiskMap returns the current aggregate risk map.
func GetRiskMap(c *gin.Context, engine *verification.Engine) {
	points, err := engine.ComputeRiskMap(c.Request.Context())
	if err != nil {
		log.Errorf("Failed to compute risk map: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate risk map"})
		return
	}
	if points == nil {
		points = []types.RiskPoint{}
	}
	c.JSON(http.StatusOK, points)
}

func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, types.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Errorf("Report operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
