package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-firewatch/types"
)

const verificationLogsCollection = "verification_logs"

// AppendVerificationLog writes one audit entry. Entries are append-only;
// nothing in the codebase updates or deletes documents in this collection.
func (s *Store) AppendVerificationLog(ctx context.Context, entry types.VerificationLog) error {
	entry.ID = uuid.NewString()

	_, err := s.client.Collection(verificationLogsCollection).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return fmt.Errorf("appending verification log: %w", err)
	}
	return nil
}

// ListVerificationLogs returns the audit trail of one report in chronological
// order.
func (s *Store) ListVerificationLogs(ctx context.Context, reportID string) ([]types.VerificationLog, error) {
	docs, err := s.client.Collection(verificationLogsCollection).
		Where("reportId", "==", reportID).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	var entries []types.VerificationLog
	for _, doc := range docs {
		var entry types.VerificationLog
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}
