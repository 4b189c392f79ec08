package types

import "time"

// ScoreBreakdown holds the four evidence components of a verification score.
// Total is always min(100, round(ML + Satellite + Crowd + Weather)).
type ScoreBreakdown struct {
	ML        float64 `json:"ml"`
	Satellite float64 `json:"satellite"`
	Crowd     float64 `json:"crowd"`
	Weather   float64 `json:"weather"`
	Total     int     `json:"total"`
}

// VerificationLog is an append-only audit record of a ranger action on a
// report. Entries are never mutated or deleted. PreviousStatus/NewStatus are
// plain strings because delete actions record the pseudo-status "deleted".
type VerificationLog struct {
	ID             string    `firestore:"-" json:"id"`
	ReportID       string    `firestore:"reportId" json:"reportId"`
	VerifierID     string    `firestore:"verifierId" json:"verifierId"`
	VerifierName   string    `firestore:"verifierName" json:"verifierName"`
	PreviousStatus string    `firestore:"previousStatus" json:"previousStatus"`
	NewStatus      string    `firestore:"newStatus" json:"newStatus"`
	Notes          string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	Timestamp      time.Time `firestore:"timestamp" json:"timestamp"`
	Method         string    `firestore:"verificationMethod" json:"verificationMethod"`
}
