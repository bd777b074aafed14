package app

import (
	"context"
	"log/slog"
	"sync"

	"aestheticpomodoro/internal/core/model"
	"aestheticpomodoro/internal/core/progression"
	"aestheticpomodoro/internal/core/timekeeper"
	"aestheticpomodoro/internal/logger"
)

// SettingsStore persists user preferences.
type SettingsStore interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}

// Audio is the cue and music collaborator shared by the timer and the engine.
type Audio interface {
	PlayCue(cue model.Cue)
	SetEquippedCues(equipped map[model.SoundSlot]string)
	SetTheme(id model.ThemeID)
	SetVolumes(settings model.Settings)
}

// AppState ties the timer, the progression engine, audio and settings together.
type AppState struct {
	Progression *progression.Engine
	Timer       *timekeeper.TimeKeeper

	audio         Audio
	settingsStore SettingsStore

	mu            sync.RWMutex
	settings      model.Settings
	settingsHooks []func(model.Settings)
}

// New wires completion of a focus session into the engine and pushes the
// stored settings to the audio service.
func New(engine *progression.Engine, keeper *timekeeper.TimeKeeper, audio Audio, settingsStore SettingsStore) *AppState {
	settings, err := settingsStore.Load()
	if err != nil {
		slog.Error("Failed to load settings, using defaults", "error", err)
		settings = model.DefaultSettings()
	}

	state := &AppState{
		Progression:   engine,
		Timer:         keeper,
		audio:         audio,
		settingsStore: settingsStore,
		settings:      settings.Clamp(),
	}

	audio.SetVolumes(state.settings)
	engine.SetCuePlayer(audio)
	keeper.SetCuePlayer(audio)
	keeper.SetNotificationGate(state.notificationsEnabled)
	keeper.SetOnComplete(engine.AddProgress)
	return state
}

// Run drives the timer until ctx is cancelled and logs each finished session.
func (state *AppState) Run(ctx context.Context) {
	events := state.Timer.Subscribe(32)
	go state.Timer.Run(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			state.logSession(ctx, event)
		}
	}
}

func (state *AppState) logSession(ctx context.Context, event timekeeper.Event) {
	if event.SessionID == "" {
		return
	}
	log := logger.FromContext(logger.WithSessionID(ctx, event.SessionID))
	switch event.Type {
	case timekeeper.EventCompleted:
		log.Info("Focus session completed", "minutes", event.Minutes)
	case timekeeper.EventCancelled:
		log.Info("Focus session abandoned", "remaining", event.Remaining)
	}
}

// StartFocus begins a session of an owned length. It reports whether the
// timer started.
func (state *AppState) StartFocus(minutes int) bool {
	if !state.Progression.Snapshot().HasDuration(minutes) {
		slog.Warn("Refusing to start locked duration", "minutes", minutes)
		return false
	}
	if state.Timer.State() != timekeeper.StateIdle {
		return false
	}
	state.Timer.Start(minutes)
	return state.Timer.State() == timekeeper.StateRunning
}

// TogglePause pauses a running session or resumes a paused one.
func (state *AppState) TogglePause() {
	switch state.Timer.State() {
	case timekeeper.StateRunning:
		state.Timer.Pause()
	case timekeeper.StatePaused:
		state.Timer.Resume()
	}
}

// GiveUp abandons the current session and breaks the streak. A session that
// already completed keeps its streak.
func (state *AppState) GiveUp() {
	if state.Timer.Stop() {
		state.Progression.ResetStreak()
	}
}

// ApplyRemoteProfile stores profile fields received from the sync collaborator.
func (state *AppState) ApplyRemoteProfile(name, avatarRef string) {
	state.Progression.UpdateProfile(name, avatarRef)
}

// Settings returns the current preferences.
func (state *AppState) Settings() model.Settings {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.settings
}

// OnSettingsChange registers a listener called after every update.
func (state *AppState) OnSettingsChange(listener func(model.Settings)) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.settingsHooks = append(state.settingsHooks, listener)
}

// UpdateSettings applies and persists new preferences. A failed write is
// logged; the new values stay in effect for this run.
func (state *AppState) UpdateSettings(settings model.Settings) {
	settings = settings.Clamp()

	state.mu.Lock()
	state.settings = settings
	hooks := append([]func(model.Settings){}, state.settingsHooks...)
	state.mu.Unlock()

	if err := state.settingsStore.Save(settings); err != nil {
		slog.Error("Failed to save settings", "error", err)
	}
	state.audio.SetVolumes(settings)
	for _, hook := range hooks {
		hook(settings)
	}
}

func (state *AppState) notificationsEnabled() bool {
	return state.Settings().NotificationsEnabled
}
