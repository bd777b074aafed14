package timekeeper

import "time"

// State represents the current session mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// AppState mirrors the host lifecycle (foreground, inactive, background).
type AppState string

const (
	AppActive     AppState = "active"
	AppInactive   AppState = "inactive"
	AppBackground AppState = "background"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventCompleted   EventType = "completed"
	EventCancelled   EventType = "cancelled"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     State
	SessionID string
	Remaining time.Duration
	Progress  float64
	Minutes   int
	At        time.Time
}
