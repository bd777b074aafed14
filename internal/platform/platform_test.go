package platform

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"aestheticpomodoro/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdle struct {
	idle time.Duration
	err  error
}

func (stub *stubIdle) IdleDuration() (time.Duration, error) {
	return stub.idle, stub.err
}

func TestPresenceMonitorReportsTransitionsOnce(t *testing.T) {
	provider := &stubIdle{}
	var states []timekeeper.AppState
	monitor := NewPresenceMonitor(provider, time.Minute, time.Second, func(state timekeeper.AppState) {
		states = append(states, state)
	})

	require.NoError(t, monitor.Poll())
	provider.idle = 2 * time.Minute
	require.NoError(t, monitor.Poll())
	require.NoError(t, monitor.Poll())
	provider.idle = time.Second
	require.NoError(t, monitor.Poll())

	assert.Equal(t, []timekeeper.AppState{timekeeper.AppInactive, timekeeper.AppActive}, states)
}

func TestPresenceMonitorUnsupported(t *testing.T) {
	monitor := NewPresenceMonitor(&stubIdle{err: ErrIdleUnsupported}, time.Minute, time.Second, nil)

	assert.ErrorIs(t, monitor.Poll(), ErrIdleUnsupported)
}

func TestPresenceMonitorKeepsStateOnProbeError(t *testing.T) {
	provider := &stubIdle{idle: time.Hour}
	var states []timekeeper.AppState
	monitor := NewPresenceMonitor(provider, time.Minute, time.Second, func(state timekeeper.AppState) {
		states = append(states, state)
	})
	require.NoError(t, monitor.Poll())

	provider.err = errors.New("probe failed")
	assert.Error(t, monitor.Poll())
	assert.Equal(t, []timekeeper.AppState{timekeeper.AppInactive}, states)
}

func TestParseIdleMillis(t *testing.T) {
	idle, err := parseIdleMillis(" 1500\n")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, idle)

	idle, err = parseIdleMillis("-3")
	require.NoError(t, err)
	assert.Zero(t, idle)

	_, err = parseIdleMillis("abc")
	assert.Error(t, err)
}

func TestResolveDataDirOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "nested", "data")

	dir, err := ResolveDataDir(override, "ignored")

	require.NoError(t, err)
	assert.Equal(t, override, dir)
	assert.DirExists(t, dir)
}

func TestSingleInstanceHandoff(t *testing.T) {
	appName := "aesthetic-pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(appName)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	shown := make(chan struct{}, 1)
	go guard.Serve(func() { shown <- struct{}{} })

	require.NoError(t, SignalRunningInstance(appName))
	select {
	case <-shown:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not asked to show its window")
	}
}

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("Aesthetic Pomodoro")
	assert.Equal(t, port, portFromName("Aesthetic Pomodoro"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}
