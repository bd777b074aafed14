package platform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"aestheticpomodoro/internal/core/timekeeper"
)

// ErrIdleUnsupported indicates the desktop cannot report input idle time.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

// PresenceMonitor maps desktop input idleness onto the timer's app state:
// away from the keyboard is "inactive", any input brings it back to "active".
type PresenceMonitor struct {
	provider  IdleProvider
	threshold time.Duration
	interval  time.Duration
	onChange  func(timekeeper.AppState)
	current   timekeeper.AppState
}

// NewPresenceMonitor builds a monitor polling provider every interval.
func NewPresenceMonitor(provider IdleProvider, threshold, interval time.Duration, onChange func(timekeeper.AppState)) *PresenceMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &PresenceMonitor{
		provider:  provider,
		threshold: threshold,
		interval:  interval,
		onChange:  onChange,
		current:   timekeeper.AppActive,
	}
}

// Run polls until ctx is done. It returns immediately when idle detection is
// unsupported on this desktop.
func (monitor *PresenceMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(monitor.interval)
	defer ticker.Stop()

	for {
		if err := monitor.Poll(); errors.Is(err, ErrIdleUnsupported) {
			slog.Info("Idle detection unavailable, presence tracking disabled")
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll samples the idle time once and reports a state change.
func (monitor *PresenceMonitor) Poll() error {
	idle, err := monitor.provider.IdleDuration()
	if err != nil {
		if !errors.Is(err, ErrIdleUnsupported) {
			slog.Debug("Idle probe failed", "error", err)
		}
		return err
	}

	next := timekeeper.AppActive
	if idle >= monitor.threshold {
		next = timekeeper.AppInactive
	}
	if next == monitor.current {
		return nil
	}
	monitor.current = next
	if monitor.onChange != nil {
		monitor.onChange(next)
	}
	return nil
}
