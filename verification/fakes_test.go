package verification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-firewatch/firms"
	"go-firewatch/geo"
	"go-firewatch/types"
)

// fakeStore is an in-memory ReportStore for engine tests.
type fakeStore struct {
	mu          sync.Mutex
	reports     map[string]*types.FireReport
	audit       []types.VerificationLog
	auditErr    error
	updateErr   error
	listNearErr error
}

func newFakeStore(reports ...*types.FireReport) *fakeStore {
	s := &fakeStore{reports: make(map[string]*types.FireReport)}
	for _, r := range reports {
		s.reports[r.ID] = r
	}
	return s
}

func (s *fakeStore) Get(_ context.Context, id string) (*types.FireReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, types.ErrReportNotFound
	}
	copied := *report
	return &copied, nil
}

func (s *fakeStore) ListByStatus(_ context.Context, statuses ...types.ReportStatus) ([]types.FireReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.FireReport
	for _, report := range s.reports {
		for _, st := range statuses {
			if report.Status == st {
				out = append(out, *report)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStore) ListNear(_ context.Context, lat, lng, radiusDeg float64, excludeID string) ([]types.FireReport, error) {
	if s.listNearErr != nil {
		return nil, s.listNearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	box := geo.BoxAround(lat, lng, radiusDeg)
	var out []types.FireReport
	for _, report := range s.reports {
		if report.ID == excludeID {
			continue
		}
		if box.Contains(report.Lat, report.Long) {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id string, status types.ReportStatus, notes string) (*types.FireReport, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, types.ErrReportNotFound
	}
	report.Status = status
	if notes != "" {
		report.RangerNotes = notes
	}
	copied := *report
	return &copied, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return types.ErrReportNotFound
	}
	delete(s.reports, id)
	return nil
}

func (s *fakeStore) AppendVerificationLog(_ context.Context, entry types.VerificationLog) error {
	if s.auditErr != nil {
		return s.auditErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = fmt.Sprintf("log-%d", len(s.audit)+1)
	s.audit = append(s.audit, entry)
	return nil
}

// fakeFeed serves canned satellite points, optionally bbox-filtered like the
// real client.
type fakeFeed struct {
	points []types.FIRMSPoint
	err    error
	calls  int
}

func (f *fakeFeed) Fetch(_ context.Context, source types.FIRMSSource, window firms.Window, bbox *geo.Box) (*firms.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	points := f.points
	if bbox != nil {
		points = nil
		for _, p := range f.points {
			if bbox.Contains(p.Lat, p.Long) {
				points = append(points, p)
			}
		}
	}
	return &firms.Result{Points: points, Source: source, Window: window}, nil
}

// fakeWeather returns a fixed snapshot or error.
type fakeWeather struct {
	data *types.WeatherData
	err  error
}

func (f *fakeWeather) Get(context.Context, float64, float64) (*types.WeatherData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

// fakeNotifier records confirmed-report alerts.
type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) NotifyNearby(_ context.Context, report *types.FireReport) {
	f.notified = append(f.notified, report.ID)
}

var errUpstreamDown = errors.New("upstream down")
