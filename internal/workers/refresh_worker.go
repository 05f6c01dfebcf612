package workers

import (
	"context"
	"time"

	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/services"
)

// refreshDebounce coalesces bursts of invalidations (e.g. a roster
// import followed by several preference edits) into one recompute.
const refreshDebounce = 500 * time.Millisecond

// StartRefreshWorker re-warms the ranking and schedule caches after
// mutations. Runs until ctx is cancelled.
func StartRefreshWorker(ctx context.Context, bidSvc *services.BidService) {
	logging.Info("refresh worker started", "debounce", refreshDebounce.String())

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logging.Info("refresh worker stopped")
			return

		case <-bidSvc.RefreshSignal():
			if timer == nil {
				timer = time.NewTimer(refreshDebounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(refreshDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			start := time.Now()
			bidSvc.Warm(ctx)
			logging.Debug("caches re-warmed", "took", time.Since(start).String())
		}
	}
}
