package verification

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-firewatch/firms"
	"go-firewatch/types"
)

func testReport(id string, lat, lng float64, status types.ReportStatus, confidence float64) *types.FireReport {
	return &types.FireReport{
		ID:         id,
		UserID:     "user-" + id,
		UserName:   "Reporter " + id,
		Lat:        lat,
		Long:       lng,
		Status:     status,
		Confidence: confidence,
	}
}

func TestComputeContextConfirmPath(t *testing.T) {
	store := newFakeStore(
		testReport("target", 10.0, 20.0, types.StatusUnverified, 90),
		testReport("corroborating", 10.01, 20.01, types.StatusUnverified, 40),
		testReport("far-away", 11.0, 21.0, types.StatusUnverified, 40),
	)
	feed := &fakeFeed{points: []types.FIRMSPoint{
		{Lat: 10.02, Long: 20.02, Confidence: 85, Source: types.SourceVIIRS},
		{Lat: 50.0, Long: 60.0, Confidence: 85, Source: types.SourceVIIRS},
	}}
	weather := &fakeWeather{data: &types.WeatherData{FireRisk: types.RiskExtreme}}
	engine := NewEngine(store, feed, weather, nil)

	vc, err := engine.ComputeContext(context.Background(), "target")
	require.NoError(t, err)

	assert.Equal(t, "target", vc.Report.ID)
	require.Len(t, vc.NearbyReports, 1) // only the ~5km neighbor corroborates
	assert.Equal(t, "corroborating", vc.NearbyReports[0].ID)
	require.Len(t, vc.FIRMSPoints, 1) // only the ~10km hotspot counts

	// ml=90 -> 36, satellite 30, crowd 20, extreme 15 => min(100, 101).
	assert.Equal(t, 36.0, vc.Score.ML)
	assert.Equal(t, 100, vc.Score.Total)
	assert.Equal(t, RecommendConfirm, vc.Recommendation)
}

func TestComputeContextRejectPath(t *testing.T) {
	store := newFakeStore(testReport("lonely", 10.0, 20.0, types.StatusUnverified, 10))
	feed := &fakeFeed{}
	weather := &fakeWeather{data: &types.WeatherData{FireRisk: types.RiskLow}}
	engine := NewEngine(store, feed, weather, nil)

	vc, err := engine.ComputeContext(context.Background(), "lonely")
	require.NoError(t, err)

	assert.Equal(t, 4, vc.Score.Total)
	assert.Equal(t, RecommendReject, vc.Recommendation)
	assert.Empty(t, vc.NearbyReports)
	assert.Empty(t, vc.FIRMSPoints)
}

func TestComputeContextFeedDownStillScores(t *testing.T) {
	store := newFakeStore(testReport("target", 10.0, 20.0, types.StatusUnverified, 90))
	feed := &fakeFeed{err: fmt.Errorf("%w: boom", firms.ErrFeedUnavailable)}
	weather := &fakeWeather{data: &types.WeatherData{FireRisk: types.RiskExtreme}}
	engine := NewEngine(store, feed, weather, nil)

	vc, err := engine.ComputeContext(context.Background(), "target")
	require.NoError(t, err)

	// Satellite component degrades to zero, never to an error.
	assert.Equal(t, 0.0, vc.Score.Satellite)
	assert.Equal(t, 51, vc.Score.Total) // 36 + 15
	assert.Empty(t, vc.FIRMSPoints)
}

func TestComputeContextWeatherDownStillScores(t *testing.T) {
	store := newFakeStore(testReport("target", 10.0, 20.0, types.StatusUnverified, 50))
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{err: errUpstreamDown}, nil)

	vc, err := engine.ComputeContext(context.Background(), "target")
	require.NoError(t, err)

	assert.Nil(t, vc.Weather)
	assert.Equal(t, 0.0, vc.Score.Weather)
	assert.Equal(t, 20, vc.Score.Total)
}

func TestComputeContextUnknownReport(t *testing.T) {
	engine := NewEngine(newFakeStore(), &fakeFeed{}, &fakeWeather{}, nil)

	_, err := engine.ComputeContext(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrReportNotFound)
}

func TestApplyStatusTransitionWritesAudit(t *testing.T) {
	store := newFakeStore(testReport("r1", 10.0, 20.0, types.StatusUnverified, 80))
	notifier := &fakeNotifier{}
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, notifier)

	updated, err := engine.ApplyStatusTransition(context.Background(), "r1", types.StatusConfirmed, "smoke visible from tower", Verifier{ID: "ranger-7", Name: "R. Marsh"})
	require.NoError(t, err)

	assert.Equal(t, types.StatusConfirmed, updated.Status)
	assert.Equal(t, "smoke visible from tower", updated.RangerNotes)

	require.Len(t, store.audit, 1)
	entry := store.audit[0]
	assert.Equal(t, "r1", entry.ReportID)
	assert.Equal(t, string(types.StatusUnverified), entry.PreviousStatus)
	assert.Equal(t, string(types.StatusConfirmed), entry.NewStatus)
	assert.Equal(t, "ranger-7", entry.VerifierID)
	assert.Equal(t, "manual", entry.Method)

	// Confirmation triggers the nearby-user alert.
	assert.Equal(t, []string{"r1"}, notifier.notified)
}

func TestApplyStatusTransitionInvalidStatus(t *testing.T) {
	store := newFakeStore(testReport("r1", 10.0, 20.0, types.StatusUnverified, 80))
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	for _, bogus := range []types.ReportStatus{"bogus", "unverified", ""} {
		_, err := engine.ApplyStatusTransition(context.Background(), "r1", bogus, "", Verifier{})
		assert.ErrorIs(t, err, types.ErrInvalidStatus, "status=%q", bogus)
	}

	// Rejected before any mutation: status and audit log untouched.
	report, err := store.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusUnverified, report.Status)
	assert.Empty(t, store.audit)
}

func TestApplyStatusTransitionUnknownReport(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	_, err := engine.ApplyStatusTransition(context.Background(), "ghost", types.StatusConfirmed, "", Verifier{})
	assert.ErrorIs(t, err, types.ErrReportNotFound)
	assert.Empty(t, store.audit)
}

func TestApplyStatusTransitionAuditFailureDoesNotBlock(t *testing.T) {
	store := newFakeStore(testReport("r1", 10.0, 20.0, types.StatusUnverified, 80))
	store.auditErr = errUpstreamDown
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	// The primary action succeeds even though the audit append fails.
	updated, err := engine.ApplyStatusTransition(context.Background(), "r1", types.StatusResolved, "", Verifier{})
	require.NoError(t, err)
	assert.Equal(t, types.StatusResolved, updated.Status)
}

func TestAuditAppendOnlyOrdering(t *testing.T) {
	store := newFakeStore(testReport("r1", 10.0, 20.0, types.StatusUnverified, 80))
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	sequence := []types.ReportStatus{
		types.StatusNeedsMonitoring,
		types.StatusConfirmed,
		types.StatusResolved,
	}
	for _, status := range sequence {
		_, err := engine.ApplyStatusTransition(context.Background(), "r1", status, "", Verifier{ID: "ranger-1"})
		require.NoError(t, err)
	}

	// Exactly N entries with correct previous/new chains in order.
	require.Len(t, store.audit, len(sequence))
	previous := string(types.StatusUnverified)
	for i, status := range sequence {
		assert.Equal(t, previous, store.audit[i].PreviousStatus)
		assert.Equal(t, string(status), store.audit[i].NewStatus)
		previous = string(status)
	}
	for i := 1; i < len(store.audit); i++ {
		assert.False(t, store.audit[i].Timestamp.Before(store.audit[i-1].Timestamp))
	}
}

func TestDeleteReportWritesTerminalAudit(t *testing.T) {
	store := newFakeStore(testReport("r1", 10.0, 20.0, types.StatusConfirmed, 80))
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	require.NoError(t, engine.DeleteReport(context.Background(), "r1", Verifier{ID: "ranger-2", Name: "B. Ash"}))

	_, err := store.Get(context.Background(), "r1")
	assert.ErrorIs(t, err, types.ErrReportNotFound)

	require.Len(t, store.audit, 1)
	entry := store.audit[0]
	assert.Equal(t, string(types.StatusConfirmed), entry.PreviousStatus)
	assert.Equal(t, "deleted", entry.NewStatus)
	assert.Equal(t, "deletion", entry.Method)
}

func TestDeleteReportUnknownReport(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, &fakeFeed{}, &fakeWeather{}, nil)

	err := engine.DeleteReport(context.Background(), "ghost", Verifier{})
	assert.ErrorIs(t, err, types.ErrReportNotFound)
	assert.Empty(t, store.audit)
}
