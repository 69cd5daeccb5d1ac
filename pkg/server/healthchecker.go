package server

import (
	"context"
	"log/slog"
	"time"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker is healthy while its dependency answers a ping within
// the timeout.
type PingHealthChecker struct {
	pinger  Pinger
	timeout time.Duration
}

func NewPingHealthChecker(p Pinger, timeout time.Duration) *PingHealthChecker {
	return &PingHealthChecker{pinger: p, timeout: timeout}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, hc.timeout)
	defer cancel()

	if err := hc.pinger.Ping(ctx); err != nil {
		slog.Warn("Health check failed", "error", err)
		return false
	}
	return true
}
