package notify

import (
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Sender delivers a desktop notification. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Message is the text of the completion notification.
type Message struct {
	Title string
	Body  string
}

// DefaultMessage announces the end of a focus session.
var DefaultMessage = Message{
	Title: "Focus session complete",
	Body:  "Time for a break. Your XP is waiting.",
}

// Scheduler holds at most one pending notification. When it fires the user is
// notified and onDue lets the timer re-check its deadline.
type Scheduler struct {
	mu         sync.Mutex
	sender     Sender
	message    Message
	onDue      func()
	timer      *time.Timer
	generation uint64
}

// NewScheduler returns a scheduler sending through sender.
func NewScheduler(sender Sender, message Message, onDue func()) *Scheduler {
	return &Scheduler{sender: sender, message: message, onDue: onDue}
}

// Schedule replaces any pending notification with one firing after delay.
func (scheduler *Scheduler) Schedule(delay time.Duration) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.stopLocked()
	generation := scheduler.generation
	scheduler.timer = time.AfterFunc(delay, func() { scheduler.fire(generation) })
	slog.Debug("Notification scheduled", "in", delay)
}

// CancelAll drops the pending notification, if any.
func (scheduler *Scheduler) CancelAll() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.stopLocked()
}

// pending reports whether a notification is waiting to fire.
func (scheduler *Scheduler) pending() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.timer != nil
}

func (scheduler *Scheduler) stopLocked() {
	if scheduler.timer != nil {
		scheduler.timer.Stop()
		scheduler.timer = nil
	}
	// A timer that already started firing sees a stale generation and stays quiet.
	scheduler.generation++
}

func (scheduler *Scheduler) fire(generation uint64) {
	scheduler.mu.Lock()
	if generation != scheduler.generation {
		scheduler.mu.Unlock()
		return
	}
	scheduler.timer = nil
	sender, message, onDue := scheduler.sender, scheduler.message, scheduler.onDue
	scheduler.mu.Unlock()

	if sender != nil {
		sender.SendNotification(fyne.NewNotification(message.Title, message.Body))
	}
	if onDue != nil {
		onDue()
	}
}
