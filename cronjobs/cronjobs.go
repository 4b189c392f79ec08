package cronjobs

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/robfig/cron/v3"

	"go-firewatch/verification"
)

const highRiskThreshold = 80

// InitCronJobs starts the background schedules. The risk-map sweep is
// observability only: it recomputes the map and logs what it sees, caching
// and persisting nothing.
func InitCronJobs(engine *verification.Engine) {
	log.Info("Starting cron jobs")
	c := cron.New()

	// Risk-map sweep: every 15 minutes.
	_, err := c.AddFunc("*/15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		points, err := engine.ComputeRiskMap(ctx)
		if err != nil {
			log.Errorf("CronJob: risk-map sweep failed: %v", err)
			return
		}

		highRisk := 0
		for _, p := range points {
			if p.RiskScore >= highRiskThreshold {
				highRisk++
			}
		}
		log.Infof("CronJob: risk-map sweep found %d points, %d high-risk", len(points), highRisk)
	})
	if err != nil {
		log.Errorf("Error scheduling risk-map sweep: %v", err)
	}

	c.Start()
}
