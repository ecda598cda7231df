package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest store health snapshot.
type HealthMonitor struct {
	mongo   Pinger
	timeout time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor returns a monitor for the given store.
func NewHealthMonitor(mongo Pinger) *HealthMonitor {
	return &HealthMonitor{mongo: mongo, timeout: 2 * time.Second}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings the store once and records the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := HealthStatus{
		Mongo:     h.mongo.Ping(ctx) == nil,
		CheckedAt: time.Now().UTC(),
	}
	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start checks immediately and then every interval until ctx is done.
// A non-positive interval disables the periodic checks.
func (h *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	h.Check(ctx)
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
