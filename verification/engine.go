package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"

	"go-firewatch/firms"
	"go-firewatch/geo"
	"go-firewatch/types"
)

// ReportStore is the persistence collaborator. Implementations map their
// missing-document errors to types.ErrReportNotFound.
type ReportStore interface {
	Get(ctx context.Context, id string) (*types.FireReport, error)
	ListByStatus(ctx context.Context, statuses ...types.ReportStatus) ([]types.FireReport, error)
	ListNear(ctx context.Context, lat, lng, radiusDeg float64, excludeID string) ([]types.FireReport, error)
	UpdateStatus(ctx context.Context, id string, status types.ReportStatus, notes string) (*types.FireReport, error)
	Delete(ctx context.Context, id string) error
	AppendVerificationLog(ctx context.Context, entry types.VerificationLog) error
}

// FireFeed supplies satellite hotspot detections.
type FireFeed interface {
	Fetch(ctx context.Context, source types.FIRMSSource, window firms.Window, bbox *geo.Box) (*firms.Result, error)
}

// WeatherService supplies a weather snapshot for a coordinate.
type WeatherService interface {
	Get(ctx context.Context, lat, lng float64) (*types.WeatherData, error)
}

// Notifier alerts users near a report once it is confirmed. Delivery
// mechanics live outside this engine.
type Notifier interface {
	NotifyNearby(ctx context.Context, report *types.FireReport)
}

// Verifier identifies who performed a ranger action, for the audit trail.
type Verifier struct {
	ID   string
	Name string
}

// Context is everything a ranger needs to judge one report: the report
// itself, its corroborating evidence, and the composed score.
type Context struct {
	Report         *types.FireReport    `json:"report"`
	NearbyReports  []types.FireReport   `json:"nearbyReports"`
	FIRMSPoints    []types.FIRMSPoint   `json:"firmsData"`
	Weather        *types.WeatherData   `json:"weather"`
	Score          types.ScoreBreakdown `json:"verificationScore"`
	Recommendation Recommendation       `json:"recommendation"`
}

// Engine wires the collaborators together. It holds no mutable state of its
// own; every computation re-reads from source.
type Engine struct {
	store    ReportStore
	feed     FireFeed
	weather  WeatherService
	notifier Notifier
}

func NewEngine(store ReportStore, feed FireFeed, weather WeatherService, notifier Notifier) *Engine {
	return &Engine{store: store, feed: feed, weather: weather, notifier: notifier}
}

// ComputeContext assembles the verification context for one report. As long
// as the report exists this always yields a score and tier: an unreachable
// satellite feed or weather service degrades that component to zero instead
// of failing the request. Reports are fetched before satellite data so each
// scoring pass sees one consistent snapshot.
func (e *Engine) ComputeContext(ctx context.Context, reportID string) (*Context, error) {
	report, err := e.store.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}

	nearby, err := e.store.ListNear(ctx, report.Lat, report.Long, geo.CorroborationRadiusDeg, report.ID)
	if err != nil {
		return nil, fmt.Errorf("listing nearby reports: %w", err)
	}

	var firmsPoints []types.FIRMSPoint
	bbox := geo.BoxAround(report.Lat, report.Long, geo.SatelliteRadiusDeg)
	result, err := e.feed.Fetch(ctx, types.SourceVIIRS, firms.Window24h, &bbox)
	if err != nil {
		log.Warnf("verification: satellite fetch failed for report %s, scoring without it: %v", report.ID, err)
	} else {
		firmsPoints = result.Points
	}

	var weather *types.WeatherData
	if w, err := e.weather.Get(ctx, report.Lat, report.Long); err != nil {
		log.Warnf("verification: weather lookup failed for report %s, scoring without it: %v", report.ID, err)
	} else {
		weather = w
	}

	risk := types.FireRisk("")
	if weather != nil {
		risk = weather.FireRisk
	}
	score := Score(report.Confidence, len(firmsPoints), len(nearby), risk)

	return &Context{
		Report:         report,
		NearbyReports:  nearby,
		FIRMSPoints:    firmsPoints,
		Weather:        weather,
		Score:          score,
		Recommendation: Recommend(score.Total),
	}, nil
}

// ApplyStatusTransition moves a report into one of the four non-initial
// statuses and appends one audit entry. Invalid targets are rejected before
// any mutation; a failed audit append after a successful update is logged and
// accepted, never retried, so the ranger action itself is not blocked.
func (e *Engine) ApplyStatusTransition(ctx context.Context, reportID string, newStatus types.ReportStatus, notes string, by Verifier) (*types.FireReport, error) {
	if !newStatus.IsTransitionTarget() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, newStatus)
	}

	report, err := e.store.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}
	previous := report.Status

	updated, err := e.store.UpdateStatus(ctx, reportID, newStatus, notes)
	if err != nil {
		return nil, fmt.Errorf("updating report status: %w", err)
	}

	entry := types.VerificationLog{
		ReportID:       reportID,
		VerifierID:     by.ID,
		VerifierName:   by.Name,
		PreviousStatus: string(previous),
		NewStatus:      string(newStatus),
		Notes:          notes,
		Timestamp:      time.Now().UTC(),
		Method:         "manual",
	}
	if err := e.store.AppendVerificationLog(ctx, entry); err != nil {
		log.Warnf("verification: audit append failed for report %s (%s -> %s): %v", reportID, previous, newStatus, err)
	}

	if newStatus == types.StatusConfirmed && e.notifier != nil {
		e.notifier.NotifyNearby(ctx, updated)
	}

	return updated, nil
}

// DeleteReport permanently removes a report, writing a terminal "deleted"
// audit entry first. Irreversible.
func (e *Engine) DeleteReport(ctx context.Context, reportID string, by Verifier) error {
	report, err := e.store.Get(ctx, reportID)
	if err != nil {
		return err
	}

	entry := types.VerificationLog{
		ReportID:       reportID,
		VerifierID:     by.ID,
		VerifierName:   by.Name,
		PreviousStatus: string(report.Status),
		NewStatus:      "deleted",
		Timestamp:      time.Now().UTC(),
		Method:         "deletion",
	}
	if err := e.store.AppendVerificationLog(ctx, entry); err != nil {
		log.Warnf("verification: audit append failed for deletion of report %s: %v", reportID, err)
	}

	if err := e.store.Delete(ctx, reportID); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}
