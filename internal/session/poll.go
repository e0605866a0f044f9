package session

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// defaultPollInterval backstops a missing or non-positive configured
// interval. rate.Every(0) means no pacing at all, so zero must never reach
// the limiter.
const defaultPollInterval = time.Minute

// StartPolling re-resolves the tier at a fixed interval, as the fallback
// path when the realtime channel is down. The rate limiter paces the loop;
// a non-positive interval falls back to defaultPollInterval.
// Blocks until ctx is done; run it on its own goroutine.
func (m *Manager) StartPolling(ctx context.Context) {
	every := m.pollEvery
	if every <= 0 {
		every = defaultPollInterval
	}

	limiter := rate.NewLimiter(rate.Every(every), 1)
	// burn the initial token so the first poll waits a full interval
	_ = limiter.Allow()

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if m.State() != StateAuthenticated {
			continue
		}
		if err := m.RefreshTier(ctx); err != nil {
			m.l.Debugf(ctx, "session poll: %v", err)
		}
	}
}
