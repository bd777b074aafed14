package notify

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []*fyne.Notification
}

func (sender *recordingSender) SendNotification(notification *fyne.Notification) {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.sent = append(sender.sent, notification)
}

func (sender *recordingSender) count() int {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	return len(sender.sent)
}

func TestScheduleFiresOnce(t *testing.T) {
	sender := &recordingSender{}
	due := make(chan struct{}, 4)
	scheduler := NewScheduler(sender, DefaultMessage, func() { due <- struct{}{} })

	scheduler.Schedule(10 * time.Millisecond)

	select {
	case <-due:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never fired")
	}
	require.Equal(t, 1, sender.count())
	assert.Equal(t, DefaultMessage.Title, sender.sent[0].Title)
	assert.Equal(t, DefaultMessage.Body, sender.sent[0].Content)
	assert.False(t, scheduler.pending())
}

func TestCancelAllPreventsDelivery(t *testing.T) {
	sender := &recordingSender{}
	scheduler := NewScheduler(sender, DefaultMessage, nil)

	scheduler.Schedule(20 * time.Millisecond)
	require.True(t, scheduler.pending())
	scheduler.CancelAll()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, sender.count())
	assert.False(t, scheduler.pending())
}

func TestRescheduleReplacesPending(t *testing.T) {
	sender := &recordingSender{}
	due := make(chan struct{}, 4)
	scheduler := NewScheduler(sender, DefaultMessage, func() { due <- struct{}{} })

	scheduler.Schedule(time.Hour)
	scheduler.Schedule(10 * time.Millisecond)

	select {
	case <-due:
	case <-time.After(2 * time.Second):
		t.Fatal("rescheduled notification never fired")
	}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sender.count())
}

func TestStaleGenerationIsIgnored(t *testing.T) {
	sender := &recordingSender{}
	scheduler := NewScheduler(sender, DefaultMessage, nil)
	scheduler.Schedule(time.Hour)
	stale := scheduler.generation
	scheduler.CancelAll()

	scheduler.fire(stale)

	assert.Zero(t, sender.count())
}
