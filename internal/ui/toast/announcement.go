package toast

import (
	"fmt"

	"aestheticpomodoro/internal/core/model"
)

// Kind selects the accent of an announcement.
type Kind int

const (
	KindAchievement Kind = iota
	KindLevelUp
	KindPurchase
)

// Announcement is one popup.
type Announcement struct {
	Kind     Kind
	Title    string
	Subtitle string
}

// ForAchievement announces a newly granted achievement.
func ForAchievement(achievement model.Achievement) Announcement {
	return Announcement{
		Kind:     KindAchievement,
		Title:    achievement.Title,
		Subtitle: fmt.Sprintf("%s  +%d XP", achievement.Description, achievement.XPReward),
	}
}

// ForLevelUp announces a level change.
func ForLevelUp(previous, current int) Announcement {
	return Announcement{
		Kind:     KindLevelUp,
		Title:    fmt.Sprintf("Level %d!", current),
		Subtitle: fmt.Sprintf("You climbed from level %d.", previous),
	}
}

// ForPurchase announces a shop unlock.
func ForPurchase(item model.ShopItem) Announcement {
	return Announcement{
		Kind:     KindPurchase,
		Title:    "Unlocked " + item.Name,
		Subtitle: fmt.Sprintf("-%d XP", item.Price),
	}
}

// queue keeps announcements in arrival order.
type queue struct {
	items []Announcement
}

func (q *queue) push(announcement Announcement) {
	q.items = append(q.items, announcement)
}

func (q *queue) pop() (Announcement, bool) {
	if len(q.items) == 0 {
		return Announcement{}, false
	}
	next := q.items[0]
	q.items = q.items[1:]
	return next, true
}

func (q *queue) len() int {
	return len(q.items)
}
