package home

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aestheticpomodoro/internal/core/model"
)

// durationOptions renders owned focus lengths for the selector.
func durationOptions(durations []int) []string {
	options := make([]string, 0, len(durations))
	for _, minutes := range durations {
		options = append(options, fmt.Sprintf("%d min", minutes))
	}
	return options
}

func parseDurationOption(option string) (int, bool) {
	minutes, err := strconv.Atoi(strings.TrimSuffix(option, " min"))
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

// shopState is what the shop row shows for one item.
type shopState int

const (
	shopBuyable shopState = iota
	shopTooExpensive
	shopOwned
)

func stateOf(item model.ShopItem, progress model.UserProgress) shopState {
	owned := false
	switch item.Category {
	case model.CategoryTheme:
		owned = progress.HasTheme(item.Theme)
	case model.CategorySound:
		owned = progress.HasSound(item.ID)
	case model.CategoryTimer:
		owned = progress.HasDuration(item.DurationMinutes)
	}
	switch {
	case owned:
		return shopOwned
	case progress.XP < item.Price:
		return shopTooExpensive
	default:
		return shopBuyable
	}
}

func buttonLabel(item model.ShopItem, state shopState) string {
	switch state {
	case shopOwned:
		return "Owned"
	case shopTooExpensive:
		return fmt.Sprintf("%d XP", item.Price)
	default:
		return fmt.Sprintf("Buy · %d XP", item.Price)
	}
}

// ownedSounds lists the owned sounds that fit a slot, sorted by id.
func ownedSounds(progress model.UserProgress, slot model.SoundSlot) []string {
	var ids []string
	for _, id := range progress.UnlockedSounds {
		if item, ok := model.SoundByID(id); ok && item.Slot == slot {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func themeNames(ids []model.ThemeID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, model.ThemeByID(id).Name)
	}
	return names
}

func themeIDByName(name string) (model.ThemeID, bool) {
	for _, theme := range model.Themes() {
		if theme.Name == name {
			return theme.ID, true
		}
	}
	return "", false
}

func statsText(progress model.UserProgress, level model.LevelProgress) string {
	return fmt.Sprintf("Level %d · %d XP to spend · %d XP to next level · streak %d · %d sessions · %d min",
		level.Level, progress.XP, level.XPToNext, progress.Streak, progress.CompletedPomodoros, progress.TotalMinutes)
}

func achievementSummary(progress model.UserProgress, catalog []model.Achievement) string {
	unlocked := 0
	for _, achievement := range catalog {
		if progress.HasAchievement(achievement.ID) {
			unlocked++
		}
	}
	return fmt.Sprintf("%d of %d unlocked", unlocked, len(catalog))
}

func rewardText(achievement model.Achievement) string {
	return fmt.Sprintf("+%d XP", achievement.XPReward)
}
