package types

import (
	"errors"
	"time"
)

var (
	// ErrReportNotFound is returned when a report id does not exist in the store.
	ErrReportNotFound = errors.New("fire report not found")
	// ErrInvalidStatus is returned when a transition targets a status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid report status")
)

type ReportStatus string

const (
	StatusUnverified      ReportStatus = "unverified"
	StatusConfirmed       ReportStatus = "confirmed"
	StatusFalseAlarm      ReportStatus = "false_alarm"
	StatusNeedsMonitoring ReportStatus = "needs_monitoring"
	StatusResolved        ReportStatus = "resolved"
)

// IsTransitionTarget reports whether a ranger action may move a report into s.
// Reports start at unverified; that is never a valid target.
func (s ReportStatus) IsTransitionTarget() bool {
	switch s {
	case StatusConfirmed, StatusFalseAlarm, StatusNeedsMonitoring, StatusResolved:
		return true
	}
	return false
}

// FireReport is a user-submitted fire observation.
type FireReport struct {
	ID          string       `firestore:"-" json:"id"`
	UserID      string       `firestore:"userId" json:"userId"`
	UserName    string       `firestore:"userName" json:"userName"`
	Lat         float64      `firestore:"lat" json:"latitude"`
	Long        float64      `firestore:"long" json:"longitude"`
	Address     string       `firestore:"address,omitempty" json:"address,omitempty"`
	ImageURL    string       `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description string       `firestore:"description,omitempty" json:"description,omitempty"`
	Confidence  float64      `firestore:"confidence" json:"confidence"` // ML image confidence, 0-100
	Status      ReportStatus `firestore:"status" json:"status"`
	Weather     *WeatherData `firestore:"weather,omitempty" json:"weather,omitempty"` // snapshot taken at submission
	RangerNotes string       `firestore:"rangerNotes,omitempty" json:"rangerNotes,omitempty"`
	Timestamp   time.Time    `firestore:"timestamp" json:"timestamp"`
}
