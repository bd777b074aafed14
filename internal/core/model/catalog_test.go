package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeCatalog(t *testing.T) {
	themes := Themes()
	require.Len(t, themes, 17)

	seen := map[ThemeID]bool{}
	for _, theme := range themes {
		assert.False(t, seen[theme.ID], "duplicate theme %s", theme.ID)
		seen[theme.ID] = true
		assert.True(t, IsKnownTheme(theme.ID))
	}
	assert.True(t, seen[DefaultTheme])
}

func TestThemeByIDFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ThemeCyberpunk, ThemeByID(ThemeCyberpunk).ID)
	assert.Equal(t, DefaultTheme, ThemeByID("vaporwave-9000").ID)
	assert.False(t, IsKnownTheme("vaporwave-9000"))
}

func TestShopItemByID(t *testing.T) {
	item, err := ShopItemByID("duration_40")
	require.NoError(t, err)
	assert.Equal(t, CategoryTimer, item.Category)
	assert.Equal(t, 40, item.DurationMinutes)
	assert.Equal(t, 500, item.Price)

	item, err = ShopItemByID("theme_" + string(ThemeCyberpunk))
	require.NoError(t, err)
	assert.Equal(t, CategoryTheme, item.Category)
	assert.Equal(t, ThemeByID(ThemeCyberpunk).Price, item.Price)

	_, err = ShopItemByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoundCatalogCoversDefaults(t *testing.T) {
	for slot, id := range DefaultEquippedSounds() {
		item, ok := SoundByID(id)
		require.True(t, ok, id)
		assert.Equal(t, slot, item.Slot)
		assert.Zero(t, item.Price)
	}
}

func TestAchievementCatalogOrderAndRewards(t *testing.T) {
	achievements := DefaultAchievements()
	require.Len(t, achievements, 18)

	assert.Equal(t, "pomodoro_1", achievements[0].ID)
	assert.Equal(t, 10, achievements[0].XPReward)
	assert.Equal(t, "pomodoro_1000", achievements[8].ID)
	assert.Equal(t, 10000, achievements[8].XPReward)
	assert.Equal(t, "minutes_25", achievements[9].ID)
	assert.Equal(t, 25, achievements[9].XPReward)
	assert.Equal(t, "deep_worker", achievements[17].ID)
	assert.Equal(t, 200, achievements[17].XPReward)
}

func TestAchievementConditions(t *testing.T) {
	byID := map[string]Achievement{}
	for _, achievement := range DefaultAchievements() {
		byID[achievement.ID] = achievement
	}

	assert.True(t, byID["pomodoro_1"].Condition(UserProgress{CompletedPomodoros: 1}))
	assert.False(t, byID["pomodoro_5"].Condition(UserProgress{CompletedPomodoros: 4}))
	assert.True(t, byID["minutes_25"].Condition(UserProgress{TotalMinutes: 25}))
	assert.False(t, byID["minutes_100"].Condition(UserProgress{TotalMinutes: 99}))
	assert.True(t, byID["deep_worker"].Condition(UserProgress{Streak: 4}))
	assert.False(t, byID["deep_worker"].Condition(UserProgress{Streak: 3}))
}

func TestCueSlots(t *testing.T) {
	slot, ok := CueAlarm.Slot()
	assert.True(t, ok)
	assert.Equal(t, SlotAlarm, slot)

	_, ok = CueLevelUp.Slot()
	assert.False(t, ok)
}
