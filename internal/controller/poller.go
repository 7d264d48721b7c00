package controller

import (
	"context"
	"time"

	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

// Poller re-loads the visible week on a fixed interval so dashboard widgets
// read fresh data. Fixed period, no jitter, no backoff — a failed refresh
// logs and waits for the next tick.
type Poller struct {
	ctrl     *ScheduleController
	interval time.Duration
}

// NewPoller creates a poller for the given controller.
func NewPoller(ctrl *ScheduleController, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Poller{ctrl: ctrl, interval: interval}
}

// Run blocks until ctx is cancelled, refreshing on every tick.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.InfoLog(ctx, "dashboard poller running every %s", p.interval)
	for {
		select {
		case <-ctx.Done():
			logger.InfoLog(ctx, "dashboard poller stopped")
			return
		case <-ticker.C:
			if _, err := p.ctrl.LoadWeek(ctx); err != nil {
				logger.WarnLog(ctx, "dashboard refresh failed: %v", err)
			}
		}
	}
}
