package model

import "sort"

// SoundSlot names a user-equippable sound position.
type SoundSlot string

const (
	SlotClick  SoundSlot = "click"
	SlotAlarm  SoundSlot = "alarm"
	SlotStart  SoundSlot = "start"
	SlotGiveUp SoundSlot = "giveup"
)

// SoundSlots lists every slot in display order.
var SoundSlots = []SoundSlot{SlotClick, SlotAlarm, SlotStart, SlotGiveUp}

// DefaultDuration is the focus length every installation owns.
const DefaultDuration = 25

// DefaultProfileName is shown until the user picks a name.
const DefaultProfileName = "Focus Master"

// UserProgress is the single persisted progression record.
type UserProgress struct {
	XP                 int                  `json:"xp"`
	LifetimeXP         int                  `json:"lifetimeXp"`
	Level              int                  `json:"level"`
	CompletedPomodoros int                  `json:"completedPomodoros"`
	TotalMinutes       int                  `json:"totalMinutes"`
	Streak             int                  `json:"streak"`
	UnlockedThemes     []ThemeID            `json:"unlockedThemes"`
	UnlockedSounds     []string             `json:"unlockedSounds"`
	UnlockedDurations  []int                `json:"unlockedDurations"`
	EquippedTheme      ThemeID              `json:"equippedTheme"`
	EquippedSounds     map[SoundSlot]string `json:"equippedSounds"`
	Achievements       []string             `json:"achievements"`
	Name               string               `json:"name"`
	AvatarRef          string               `json:"avatarUri"`
}

// DefaultEquippedSounds returns the free sound for every slot.
func DefaultEquippedSounds() map[SoundSlot]string {
	return map[SoundSlot]string{
		SlotClick:  "click_default",
		SlotAlarm:  "alarm_default",
		SlotStart:  "start_default",
		SlotGiveUp: "giveup_default",
	}
}

// DefaultProgress returns the record of a fresh installation.
func DefaultProgress() UserProgress {
	return UserProgress{
		XP:                0,
		LifetimeXP:        0,
		Level:             1,
		UnlockedThemes:    []ThemeID{DefaultTheme},
		UnlockedSounds:    []string{"click_default", "alarm_default", "start_default", "giveup_default"},
		UnlockedDurations: []int{DefaultDuration},
		EquippedTheme:     DefaultTheme,
		EquippedSounds:    DefaultEquippedSounds(),
		Achievements:      []string{},
		Name:              DefaultProfileName,
	}
}

// Clone returns a deep copy so callers never share slices or maps with the engine.
// Sets stay non-nil so they serialise as [] rather than null.
func (progress UserProgress) Clone() UserProgress {
	clone := progress
	clone.UnlockedThemes = append(make([]ThemeID, 0, len(progress.UnlockedThemes)), progress.UnlockedThemes...)
	clone.UnlockedSounds = append(make([]string, 0, len(progress.UnlockedSounds)), progress.UnlockedSounds...)
	clone.UnlockedDurations = append(make([]int, 0, len(progress.UnlockedDurations)), progress.UnlockedDurations...)
	clone.Achievements = append(make([]string, 0, len(progress.Achievements)), progress.Achievements...)
	clone.EquippedSounds = make(map[SoundSlot]string, len(progress.EquippedSounds))
	for slot, id := range progress.EquippedSounds {
		clone.EquippedSounds[slot] = id
	}
	return clone
}

// EffectiveLifetimeXP returns LifetimeXP, seeding it from TotalMinutes for
// records written before lifetime XP was tracked.
func (progress UserProgress) EffectiveLifetimeXP() int {
	if progress.LifetimeXP == 0 && progress.TotalMinutes > 0 {
		return XPForMinutes(progress.TotalMinutes)
	}
	return progress.LifetimeXP
}

// HasTheme reports whether the theme is owned.
func (progress UserProgress) HasTheme(id ThemeID) bool {
	for _, owned := range progress.UnlockedThemes {
		if owned == id {
			return true
		}
	}
	return false
}

// HasSound reports whether the sound is owned.
func (progress UserProgress) HasSound(id string) bool {
	for _, owned := range progress.UnlockedSounds {
		if owned == id {
			return true
		}
	}
	return false
}

// HasDuration reports whether the timer length is owned.
func (progress UserProgress) HasDuration(minutes int) bool {
	for _, owned := range progress.UnlockedDurations {
		if owned == minutes {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement was already granted.
func (progress UserProgress) HasAchievement(id string) bool {
	for _, owned := range progress.Achievements {
		if owned == id {
			return true
		}
	}
	return false
}

// Normalize repairs a record read from storage so every invariant holds.
// It is the identity on records that already satisfy them.
func (progress *UserProgress) Normalize() {
	if progress.XP < 0 {
		progress.XP = 0
	}
	if progress.LifetimeXP < 0 {
		progress.LifetimeXP = 0
	}
	if progress.Level < 1 {
		progress.Level = 1
	}
	if computed := LevelFor(progress.LifetimeXP); computed > progress.Level {
		progress.Level = computed
	}
	if progress.CompletedPomodoros < 0 {
		progress.CompletedPomodoros = 0
	}
	if progress.TotalMinutes < 0 {
		progress.TotalMinutes = 0
	}
	if progress.Streak < 0 {
		progress.Streak = 0
	}

	progress.UnlockedThemes = dedupeThemes(progress.UnlockedThemes)
	if !progress.HasTheme(DefaultTheme) {
		progress.UnlockedThemes = append([]ThemeID{DefaultTheme}, progress.UnlockedThemes...)
	}
	if !progress.HasTheme(progress.EquippedTheme) {
		progress.EquippedTheme = DefaultTheme
	}

	progress.UnlockedSounds = dedupeStrings(progress.UnlockedSounds)
	defaults := DefaultEquippedSounds()
	if progress.EquippedSounds == nil {
		progress.EquippedSounds = map[SoundSlot]string{}
	}
	for _, slot := range SoundSlots {
		id, ok := progress.EquippedSounds[slot]
		if !ok || id == "" {
			progress.EquippedSounds[slot] = defaults[slot]
			id = defaults[slot]
		}
		if !progress.HasSound(id) {
			progress.UnlockedSounds = append(progress.UnlockedSounds, id)
		}
	}

	progress.UnlockedDurations = SortDurations(progress.UnlockedDurations)
	if len(progress.UnlockedDurations) == 0 {
		progress.UnlockedDurations = []int{DefaultDuration}
	}

	progress.Achievements = dedupeStrings(progress.Achievements)
}

// SortDurations returns the positive minutes ascending without duplicates.
func SortDurations(durations []int) []int {
	seen := make(map[int]struct{}, len(durations))
	sorted := make([]int, 0, len(durations))
	for _, minutes := range durations {
		if minutes <= 0 {
			continue
		}
		if _, ok := seen[minutes]; ok {
			continue
		}
		seen[minutes] = struct{}{}
		sorted = append(sorted, minutes)
	}
	sort.Ints(sorted)
	return sorted
}

func dedupeThemes(ids []ThemeID) []ThemeID {
	seen := make(map[ThemeID]struct{}, len(ids))
	result := make([]ThemeID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
