package tray

import (
	"fmt"
	"sync"

	"aestheticpomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// AppTitle is shown whenever no session is counting down.
const AppTitle = "Aesthetic Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnPreferences func()
	OnStart       func()
	OnTogglePause func()
	OnGiveUp      func()
	OnQuit        func()
}

// Icons switches the tray icon with the timer state.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state and mirrors the countdown into the tray
// status line and the main window title.
type Manager struct {
	app        desktop.App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	giveUpItem *fyne.MenuItem

	mu        sync.Mutex
	window    fyne.Window
	state     timekeeper.State
	remaining int
	title     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		state:     timekeeper.StateIdle,
		title:     AppTitle,
	}

	manager.statusItem = fyne.NewMenuItem(StatusLabel(timekeeper.StateIdle, 0), nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start focus", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.giveUpItem = fyne.NewMenuItem("Give up", invoke(&manager.callbacks.OnGiveUp))

	manager.applyState()
	manager.refreshMenu()
	return manager
}

// SetWindow makes the manager keep the window title in sync with the countdown.
func (manager *Manager) SetWindow(window fyne.Window) {
	manager.mu.Lock()
	manager.window = window
	manager.mu.Unlock()
}

// ReportProgress receives the countdown from the timer on every tick.
func (manager *Manager) ReportProgress(remaining int, progress float64) {
	title := Title(remaining, progress)

	manager.mu.Lock()
	state := manager.state
	changed := title != manager.title
	manager.title = title
	manager.remaining = remaining
	window := manager.window
	manager.mu.Unlock()

	if !changed {
		return
	}
	fyne.Do(func() {
		if window != nil {
			window.SetTitle(title)
		}
		manager.statusItem.Label = StatusLabel(state, remaining)
		manager.refreshMenu()
	})
}

// SetState updates the menu entries and the icon for the timer state.
func (manager *Manager) SetState(state timekeeper.State) {
	manager.mu.Lock()
	manager.state = state
	manager.mu.Unlock()

	fyne.Do(func() {
		manager.applyState()
		manager.refreshMenu()
	})
}

func (manager *Manager) applyState() {
	manager.mu.Lock()
	state, remaining := manager.state, manager.remaining
	manager.mu.Unlock()

	idle := state == timekeeper.StateIdle || state == timekeeper.StateCompleted || state == timekeeper.StateCancelled
	manager.startItem.Disabled = !idle
	manager.pauseItem.Disabled = idle
	manager.giveUpItem.Disabled = idle
	if state == timekeeper.StatePaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.statusItem.Label = StatusLabel(state, remaining)

	if manager.app == nil {
		return
	}
	icon := manager.icons.Idle
	switch state {
	case timekeeper.StateRunning:
		icon = manager.icons.Running
	case timekeeper.StatePaused:
		icon = manager.icons.Paused
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(AppTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open", invoke(&manager.callbacks.OnOpen)),
		manager.startItem,
		manager.pauseItem,
		manager.giveUpItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

// Title renders "m:ss - Aesthetic Pomodoro" while counting down. The {0, 0}
// report sent on give-up restores the plain title.
func Title(remaining int, progress float64) string {
	if remaining <= 0 && progress <= 0 {
		return AppTitle
	}
	return fmt.Sprintf("%s - %s", timekeeper.FormatRemaining(remaining), AppTitle)
}

// StatusLabel renders the disabled first line of the tray menu.
func StatusLabel(state timekeeper.State, remaining int) string {
	switch state {
	case timekeeper.StateRunning:
		return fmt.Sprintf("Focus: %s left", timekeeper.FormatRemaining(remaining))
	case timekeeper.StatePaused:
		return fmt.Sprintf("Paused at %s", timekeeper.FormatRemaining(remaining))
	default:
		return "Ready to focus"
	}
}
