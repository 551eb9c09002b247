package lib

import (
	"log/slog"
	"time"
)

// Heartbeats logs periodically while a long running operation is in progress.
type Heartbeats struct {
	startTime time.Time
	// initialDelay is how long to wait before the first heartbeat.
	initialDelay time.Duration
	interval     time.Duration

	operation string
	attrs     []any
}

func NewHeartbeats(initialDelay, interval time.Duration, operation string, attrs ...any) *Heartbeats {
	return &Heartbeats{
		initialDelay: initialDelay,
		interval:     interval,
		operation:    operation,
		attrs:        attrs,
	}
}

// Start begins logging in the background, the returned func stops it.
func (h *Heartbeats) Start() func() {
	h.startTime = time.Now()
	done := make(chan struct{})
	go h.start(done)
	return func() {
		close(done)
	}
}

func (h *Heartbeats) start(done <-chan struct{}) {
	timer := time.NewTimer(h.initialDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-done:
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		h.log()
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func (h *Heartbeats) log() {
	args := append([]any{slog.String("operation", h.operation), slog.Duration("elapsed", time.Since(h.startTime))}, h.attrs...)
	slog.Info("Still running...", args...)
}
