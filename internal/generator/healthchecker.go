package generator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/memoirhq/memoir-backend/internal/health"
)

// HealthChecker monitors the generation provider via periodic pings. A
// provider without a HealthPing is reported healthy unconditionally.
type HealthChecker struct {
	gen          Generator
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

func NewHealthChecker(gen Generator, log zerolog.Logger, probeTimeout time.Duration) *HealthChecker {
	hc := &HealthChecker{gen: gen, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0)
	return hc
}

// Name returns the checker name.
func (hc *HealthChecker) Name() string { return "generator" }

// IsHealthy returns the cached health status (non-blocking).
func (hc *HealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start begins periodic health checking.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if hc.probe(checkCtx) {
			hc.healthy.Store(1)
		} else {
			hc.healthy.Store(0)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func (hc *HealthChecker) probe(ctx context.Context) bool {
	p, ok := hc.gen.(health.HealthPinger)
	if !ok {
		return true
	}
	if err := p.HealthPing(ctx); err != nil {
		hc.log.Error().Stack().
			Str("checker", hc.Name()).
			Err(err).
			Msg("generator health check failed")
		return false
	}
	return true
}
