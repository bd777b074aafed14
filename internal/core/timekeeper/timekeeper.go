package timekeeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aestheticpomodoro/internal/core/model"
	"aestheticpomodoro/internal/logger"
)

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Notifier schedules the single "session complete" notification.
type Notifier interface {
	Schedule(after time.Duration)
	CancelAll()
}

// CuePlayer triggers logical sound cues.
type CuePlayer interface {
	PlayCue(cue model.Cue)
}

// Shell receives the taskbar/tray indicator state.
type Shell interface {
	ReportProgress(remainingSeconds int, progress float64)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Session is the ephemeral state of the active countdown.
// Deadline and PausedAt are zero when not applicable.
type Session struct {
	ID              string
	Active          bool
	Paused          bool
	DurationSeconds int
	Deadline        time.Time
	PausedAt        time.Time
	Remaining       int
}

// TimeKeeper is a deadline-driven countdown state machine.
// Remaining time is always derived from the absolute deadline, so missed ticks
// while the process is suspended do not skew the countdown.
type TimeKeeper struct {
	mu            sync.Mutex
	options       Config
	clock         Clock
	session       Session
	appState      AppState
	notifier      Notifier
	cues          CuePlayer
	shell         Shell
	onComplete    func(minutes int)
	notifyAllowed func() bool
	events        []chan Event
}

type effects []func()

func (fx *effects) add(fn func()) { *fx = append(*fx, fn) }

func (fx effects) run() {
	for _, fn := range fx {
		fn()
	}
}

// New creates an idle TimeKeeper.
func New(options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = systemClock{}
	}
	return &TimeKeeper{
		options:  options,
		clock:    options.Clock,
		appState: AppActive,
	}
}

// SetNotifier injects the notification scheduler.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// SetCuePlayer injects the audio cue trigger.
func (keeper *TimeKeeper) SetCuePlayer(cues CuePlayer) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.cues = cues
}

// SetShell injects the desktop shell integration.
func (keeper *TimeKeeper) SetShell(shell Shell) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.shell = shell
}

// SetOnComplete registers the completion callback receiving whole minutes.
func (keeper *TimeKeeper) SetOnComplete(handler func(minutes int)) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.onComplete = handler
}

// SetNotificationGate controls whether notifications are scheduled at all.
func (keeper *TimeKeeper) SetNotificationGate(allowed func() bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifyAllowed = allowed
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Run ticks at the configured cadence until ctx is cancelled.
func (keeper *TimeKeeper) Run(ctx context.Context) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			keeper.Tick()
		}
	}
}

// Close releases observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// State returns the current mode.
func (keeper *TimeKeeper) State() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.stateLocked()
}

// Snapshot returns a copy of the session.
func (keeper *TimeKeeper) Snapshot() Session {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.session
}

// Start begins a countdown. Ignored unless idle.
func (keeper *TimeKeeper) Start(minutes int) {
	var fx effects
	keeper.mu.Lock()
	if keeper.session.Active || minutes <= 0 {
		keeper.mu.Unlock()
		return
	}
	now := keeper.clock.Now()
	duration := minutes * 60
	keeper.session = Session{
		ID:              logger.NewSessionID(),
		Active:          true,
		DurationSeconds: duration,
		Deadline:        now.Add(time.Duration(duration) * time.Second),
		Remaining:       duration,
	}
	keeper.playLocked(&fx, model.CueStart)
	keeper.cancelNotificationsLocked(&fx)
	keeper.scheduleLocked(&fx, duration)
	keeper.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateRunning,
		SessionID: keeper.session.ID,
		Remaining: time.Duration(duration) * time.Second,
		Progress:  1,
		At:        now,
	})
	slog.Info("Focus session started", logger.AttrKeySessionID, keeper.session.ID, "minutes", minutes)
	keeper.mu.Unlock()

	fx.run()
}

// Tick re-derives the remaining time from the deadline.
func (keeper *TimeKeeper) Tick() {
	var fx effects
	keeper.mu.Lock()
	keeper.evaluateLocked(&fx, keeper.clock.Now())
	keeper.mu.Unlock()

	fx.run()
}

// NotificationDue is called when the scheduled notification fires in the foreground.
func (keeper *TimeKeeper) NotificationDue() {
	keeper.Tick()
}

// Pause freezes the countdown. Ignored unless running.
func (keeper *TimeKeeper) Pause() {
	var fx effects
	keeper.mu.Lock()
	if !keeper.session.Active || keeper.session.Paused {
		keeper.mu.Unlock()
		return
	}
	now := keeper.clock.Now()
	keeper.session.Paused = true
	keeper.session.PausedAt = now
	keeper.session.Remaining = remainingSeconds(keeper.session.Deadline, now)
	keeper.cancelNotificationsLocked(&fx)
	keeper.playLocked(&fx, model.CueClick)
	keeper.emitLocked(Event{
		Type:      EventStateChange,
		State:     StatePaused,
		SessionID: keeper.session.ID,
		Remaining: time.Duration(keeper.session.Remaining) * time.Second,
		Progress:  keeper.progressLocked(),
		At:        now,
	})
	keeper.mu.Unlock()

	fx.run()
}

// Resume pushes the deadline forward by the paused duration. Ignored unless paused.
func (keeper *TimeKeeper) Resume() {
	var fx effects
	keeper.mu.Lock()
	if !keeper.session.Active || !keeper.session.Paused {
		keeper.mu.Unlock()
		return
	}
	now := keeper.clock.Now()
	keeper.session.Deadline = keeper.session.Deadline.Add(now.Sub(keeper.session.PausedAt))
	keeper.session.Paused = false
	keeper.session.PausedAt = time.Time{}
	keeper.session.Remaining = remainingSeconds(keeper.session.Deadline, now)
	keeper.playLocked(&fx, model.CueClick)
	keeper.scheduleLocked(&fx, keeper.session.Remaining)
	keeper.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateRunning,
		SessionID: keeper.session.ID,
		Remaining: time.Duration(keeper.session.Remaining) * time.Second,
		Progress:  keeper.progressLocked(),
		At:        now,
	})
	keeper.mu.Unlock()

	fx.run()
}

// Stop gives up the session without reporting progress. It reports whether a
// session was actually abandoned.
func (keeper *TimeKeeper) Stop() bool {
	var fx effects
	keeper.mu.Lock()
	if !keeper.session.Active {
		keeper.mu.Unlock()
		return false
	}
	now := keeper.clock.Now()
	sessionID := keeper.session.ID
	keeper.session = Session{}
	keeper.cancelNotificationsLocked(&fx)
	keeper.playLocked(&fx, model.CueGiveUp)
	keeper.reportLocked(&fx, 0, 0)
	keeper.emitLocked(Event{
		Type:      EventCancelled,
		State:     StateCancelled,
		SessionID: sessionID,
		At:        now,
	})
	keeper.emitLocked(Event{Type: EventStateChange, State: StateIdle, At: now})
	slog.Info("Focus session given up", logger.AttrKeySessionID, sessionID)
	keeper.mu.Unlock()

	fx.run()
	return true
}

// SetAppState records a host lifecycle change. Returning to the foreground
// while running recomputes the remaining time immediately.
func (keeper *TimeKeeper) SetAppState(next AppState) {
	var fx effects
	keeper.mu.Lock()
	previous := keeper.appState
	keeper.appState = next
	if (previous == AppInactive || previous == AppBackground) && next == AppActive {
		keeper.evaluateLocked(&fx, keeper.clock.Now())
	}
	keeper.mu.Unlock()

	fx.run()
}

func (keeper *TimeKeeper) evaluateLocked(fx *effects, now time.Time) {
	if !keeper.session.Active || keeper.session.Paused {
		return
	}
	remaining := remainingSeconds(keeper.session.Deadline, now)
	keeper.session.Remaining = remaining
	progress := keeper.progressLocked()
	keeper.reportLocked(fx, remaining, progress)
	keeper.emitLocked(Event{
		Type:      EventProgress,
		State:     StateRunning,
		SessionID: keeper.session.ID,
		Remaining: time.Duration(remaining) * time.Second,
		Progress:  progress,
		At:        now,
	})
	if remaining == 0 {
		keeper.completeLocked(fx, now)
	}
}

func (keeper *TimeKeeper) completeLocked(fx *effects, now time.Time) {
	minutes := keeper.session.DurationSeconds / 60
	sessionID := keeper.session.ID
	keeper.session = Session{}

	keeper.playLocked(fx, model.CueAlarm)
	keeper.emitLocked(Event{
		Type:      EventCompleted,
		State:     StateCompleted,
		SessionID: sessionID,
		Minutes:   minutes,
		At:        now,
	})
	keeper.emitLocked(Event{Type: EventStateChange, State: StateIdle, At: now})
	slog.Info("Focus session completed", logger.AttrKeySessionID, sessionID, "minutes", minutes)

	if handler := keeper.onComplete; handler != nil {
		fx.add(func() { handler(minutes) })
	}
}

func (keeper *TimeKeeper) stateLocked() State {
	switch {
	case !keeper.session.Active:
		return StateIdle
	case keeper.session.Paused:
		return StatePaused
	default:
		return StateRunning
	}
}

func (keeper *TimeKeeper) progressLocked() float64 {
	if keeper.session.DurationSeconds <= 0 {
		return 0
	}
	return float64(keeper.session.Remaining) / float64(keeper.session.DurationSeconds)
}

func (keeper *TimeKeeper) playLocked(fx *effects, cue model.Cue) {
	if cues := keeper.cues; cues != nil {
		fx.add(func() { cues.PlayCue(cue) })
	}
}

func (keeper *TimeKeeper) reportLocked(fx *effects, remaining int, progress float64) {
	if shell := keeper.shell; shell != nil {
		fx.add(func() { shell.ReportProgress(remaining, progress) })
	}
}

func (keeper *TimeKeeper) scheduleLocked(fx *effects, seconds int) {
	notifier := keeper.notifier
	if notifier == nil || seconds <= 0 {
		return
	}
	if keeper.notifyAllowed != nil && !keeper.notifyAllowed() {
		return
	}
	fx.add(func() { notifier.Schedule(time.Duration(seconds) * time.Second) })
}

func (keeper *TimeKeeper) cancelNotificationsLocked(fx *effects) {
	if notifier := keeper.notifier; notifier != nil {
		fx.add(notifier.CancelAll)
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// remainingSeconds rounds up so the last second is shown and never goes negative.
func remainingSeconds(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
