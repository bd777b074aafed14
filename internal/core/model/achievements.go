package model

import "fmt"

// Achievement is a one-off reward granted when its condition first holds.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Condition   func(UserProgress) bool
	XPReward    int
}

type tierMetric int

const (
	metricPomodoros tierMetric = iota
	metricMinutes
)

var (
	pomodoroTiers = []int{1, 5, 10, 25, 50, 100, 200, 500, 1000}
	minuteTiers   = []int{25, 100, 500, 1000, 5000, 10000, 25000, 50000}
)

// DeepWorkerStreak is the consecutive completions needed for Deep Worker.
const DeepWorkerStreak = 4

func tiered(baseID, baseTitle string, metric tierMetric, tiers []int, xpMulti int) []Achievement {
	achievements := make([]Achievement, 0, len(tiers))
	for _, tier := range tiers {
		tier := tier
		unit := "Pomodoros"
		value := func(progress UserProgress) int { return progress.CompletedPomodoros }
		if metric == metricMinutes {
			unit = "Minutes"
			value = func(progress UserProgress) int { return progress.TotalMinutes }
		}
		achievements = append(achievements, Achievement{
			ID:          fmt.Sprintf("%s_%d", baseID, tier),
			Title:       fmt.Sprintf("%s %d", baseTitle, tier),
			Description: fmt.Sprintf("Reach %d %s.", tier, unit),
			Condition:   func(progress UserProgress) bool { return value(progress) >= tier },
			XPReward:    tier * xpMulti,
		})
	}
	return achievements
}

// DefaultAchievements returns the catalog in evaluation order.
func DefaultAchievements() []Achievement {
	achievements := tiered("pomodoro", "Focus Master", metricPomodoros, pomodoroTiers, 10)
	achievements = append(achievements, tiered("minutes", "Time Lord", metricMinutes, minuteTiers, 1)...)
	achievements = append(achievements, Achievement{
		ID:          "deep_worker",
		Title:       "Deep Worker",
		Description: "Complete 4 Pomodoros in a row.",
		Condition:   func(progress UserProgress) bool { return progress.Streak >= DeepWorkerStreak },
		XPReward:    200,
	})
	return achievements
}
