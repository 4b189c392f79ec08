package verification

import (
	"context"

	"github.com/apex/log"

	"go-firewatch/types"
)

// LogNotifier is the in-process Notifier used until a push-delivery service
// is wired in. It only records that an alert would have gone out.
type LogNotifier struct{}

func (LogNotifier) NotifyNearby(_ context.Context, report *types.FireReport) {
	log.Infof("notify: fire confirmed at (%.4f, %.4f), alerting users near report %s", report.Lat, report.Long, report.ID)
}
