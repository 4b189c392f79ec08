package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-firewatch/types"
)

const reportsCollection = "fire_reports"

// CreateReport persists a new report. The id and creation timestamp are
// generated here; the status always starts at unverified.
func (s *Store) CreateReport(ctx context.Context, report *types.FireReport) (*types.FireReport, error) {
	report.ID = uuid.NewString()
	report.Status = types.StatusUnverified
	report.Timestamp = time.Now().UTC()

	_, err := s.client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}
	return report, nil
}

// Get fetches a single report by id.
func (s *Store) Get(ctx context.Context, id string) (*types.FireReport, error) {
	doc, err := s.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, types.ErrReportNotFound
		}
		return nil, err
	}

	var report types.FireReport
	if err := doc.DataTo(&report); err != nil {
		return nil, err
	}
	report.ID = doc.Ref.ID
	return &report, nil
}

// List returns every report, newest first.
func (s *Store) List(ctx context.Context) ([]types.FireReport, error) {
	docs, err := s.client.Collection(reportsCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeReports(docs)
}

// ListByStatus returns reports whose status is any of the given values.
func (s *Store) ListByStatus(ctx context.Context, statuses ...types.ReportStatus) ([]types.FireReport, error) {
	values := make([]string, 0, len(statuses))
	for _, st := range statuses {
		values = append(values, string(st))
	}

	docs, err := s.client.Collection(reportsCollection).
		Where("status", "in", values).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return decodeReports(docs)
}

// ListNear returns reports inside the square degree box around a coordinate,
// excluding excludeID. Firestore only allows range filters on one field, so
// latitude is constrained in the query and longitude is filtered in memory.
func (s *Store) ListNear(ctx context.Context, lat, lng, radiusDeg float64, excludeID string) ([]types.FireReport, error) {
	docs, err := s.client.Collection(reportsCollection).
		Where("lat", ">=", lat-radiusDeg).
		Where("lat", "<=", lat+radiusDeg).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	candidates, err := decodeReports(docs)
	if err != nil {
		return nil, err
	}

	var nearby []types.FireReport
	for _, report := range candidates {
		if report.ID == excludeID {
			continue
		}
		if report.Long >= lng-radiusDeg && report.Long <= lng+radiusDeg {
			nearby = append(nearby, report)
		}
	}
	return nearby, nil
}

// UpdateStatus sets the status (and, when provided, the ranger notes) of a
// report and returns the updated document.
func (s *Store) UpdateStatus(ctx context.Context, id string, newStatus types.ReportStatus, notes string) (*types.FireReport, error) {
	updates := []firestore.Update{
		{Path: "status", Value: string(newStatus)},
	}
	if notes != "" {
		updates = append(updates, firestore.Update{Path: "rangerNotes", Value: notes})
	}

	_, err := s.client.Collection(reportsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, types.ErrReportNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a report permanently.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.Collection(reportsCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.ErrReportNotFound
		}
		return err
	}
	return nil
}

func decodeReports(docs []*firestore.DocumentSnapshot) ([]types.FireReport, error) {
	var reports []types.FireReport
	for _, doc := range docs {
		var report types.FireReport
		if err := doc.DataTo(&report); err != nil {
			return nil, err
		}
		report.ID = doc.Ref.ID
		reports = append(reports, report)
	}
	return reports, nil
}
