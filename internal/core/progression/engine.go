package progression

import (
	"log/slog"
	"sync"

	"aestheticpomodoro/internal/core/model"
)

// Store persists the progression record.
type Store interface {
	Load() (model.UserProgress, error)
	Save(progress model.UserProgress) error
}

// CuePlayer receives sound cues and the equipped audio state.
type CuePlayer interface {
	PlayCue(cue model.Cue)
	SetEquippedCues(equipped map[model.SoundSlot]string)
	SetTheme(id model.ThemeID)
}

// Hooks are invoked after a mutation has been applied and persisted.
type Hooks struct {
	OnAchievement func(achievement model.Achievement)
	OnLevelUp     func(previous, current int)
	OnChange      func(progress model.UserProgress)
}

// Config tunes the engine.
type Config struct {
	// Achievements defaults to model.DefaultAchievements when nil.
	Achievements []model.Achievement
}

// Engine owns the progression record. Every mutation is applied in memory
// under the lock, persisted, and only then announced.
type Engine struct {
	mu           sync.Mutex
	store        Store
	cues         CuePlayer
	hooks        Hooks
	achievements []model.Achievement
	progress     model.UserProgress
}

// New loads the stored record, falling back to defaults when it is unreadable.
func New(store Store, config Config) *Engine {
	achievements := config.Achievements
	if achievements == nil {
		achievements = model.DefaultAchievements()
	}

	progress, err := store.Load()
	if err != nil {
		slog.Error("Failed to load progress, using defaults", "error", err)
		progress = model.DefaultProgress()
	}
	progress.Normalize()

	return &Engine{
		store:        store,
		achievements: achievements,
		progress:     progress,
	}
}

// SetCuePlayer attaches the audio collaborator and pushes the equipped state to it.
func (engine *Engine) SetCuePlayer(cues CuePlayer) {
	engine.mu.Lock()
	engine.cues = cues
	theme := engine.progress.EquippedTheme
	equipped := engine.progress.Clone().EquippedSounds
	engine.mu.Unlock()

	if cues != nil {
		cues.SetTheme(theme)
		cues.SetEquippedCues(equipped)
	}
}

// SetHooks replaces the observer callbacks.
func (engine *Engine) SetHooks(hooks Hooks) {
	engine.mu.Lock()
	engine.hooks = hooks
	engine.mu.Unlock()
}

// Snapshot returns a deep copy of the current record.
func (engine *Engine) Snapshot() model.UserProgress {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.progress.Clone()
}

// LevelProgress reports the distance to the next level.
func (engine *Engine) LevelProgress() model.LevelProgress {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return model.ProgressFor(engine.progress.EffectiveLifetimeXP(), engine.progress.Level)
}

// AddProgress credits a completed focus session of the given length.
func (engine *Engine) AddProgress(minutes int) {
	if minutes <= 0 {
		return
	}

	engine.mu.Lock()
	previous := engine.progress
	next := previous.Clone()

	gained := model.XPForMinutes(minutes)
	lifetime := previous.EffectiveLifetimeXP() + gained
	next.TotalMinutes += minutes
	next.CompletedPomodoros++
	next.Streak++

	var unlocked []model.Achievement
	bonus := 0
	for _, achievement := range engine.achievements {
		if next.HasAchievement(achievement.ID) || !achievement.Condition(next) {
			continue
		}
		next.Achievements = append(next.Achievements, achievement.ID)
		unlocked = append(unlocked, achievement)
		bonus += achievement.XPReward
	}

	next.XP = previous.XP + gained + bonus
	next.LifetimeXP = lifetime + bonus
	computed := model.LevelFor(next.LifetimeXP)
	if computed > next.Level {
		next.Level = computed
	}
	leveledUp := next.Level > previous.Level

	engine.progress = next
	engine.persistLocked()
	cues, hooks := engine.cues, engine.hooks
	snapshot := next.Clone()
	engine.mu.Unlock()

	slog.Info("Progress added",
		"minutes", minutes,
		"xp_gained", gained,
		"achievement_xp", bonus,
		"xp", snapshot.XP,
		"lifetime_xp", snapshot.LifetimeXP,
		"level", snapshot.Level)

	for _, achievement := range unlocked {
		if cues != nil {
			cues.PlayCue(model.CueSuccess)
		}
		if hooks.OnAchievement != nil {
			hooks.OnAchievement(achievement)
		}
	}
	if leveledUp {
		if cues != nil {
			cues.PlayCue(model.CueLevelUp)
		}
		if hooks.OnLevelUp != nil {
			hooks.OnLevelUp(previous.Level, snapshot.Level)
		}
	}
	if hooks.OnChange != nil {
		hooks.OnChange(snapshot)
	}
}

// ResetStreak zeroes the consecutive completion counter.
func (engine *Engine) ResetStreak() {
	engine.mutate(func(progress *model.UserProgress) bool {
		progress.Streak = 0
		return true
	})
}

// UpdateProfile replaces the display name and avatar reference.
func (engine *Engine) UpdateProfile(name, avatarRef string) {
	engine.mutate(func(progress *model.UserProgress) bool {
		progress.Name = name
		progress.AvatarRef = avatarRef
		return true
	})
}

// EquipTheme selects an owned theme. Unowned themes are ignored.
func (engine *Engine) EquipTheme(id model.ThemeID) {
	applied := engine.mutate(func(progress *model.UserProgress) bool {
		if !progress.HasTheme(id) {
			return false
		}
		progress.EquippedTheme = id
		return true
	})
	if applied {
		if cues := engine.cuePlayer(); cues != nil {
			cues.SetTheme(id)
		}
	}
}

// EquipSound puts an owned sound into a slot. Unowned sounds and unknown
// slots are ignored.
func (engine *Engine) EquipSound(slot model.SoundSlot, id string) {
	var equipped map[model.SoundSlot]string
	applied := engine.mutate(func(progress *model.UserProgress) bool {
		if !isSlot(slot) || !progress.HasSound(id) {
			return false
		}
		progress.EquippedSounds[slot] = id
		equipped = progress.Clone().EquippedSounds
		return true
	})
	if applied {
		if cues := engine.cuePlayer(); cues != nil {
			cues.SetEquippedCues(equipped)
		}
	}
}

// mutate applies change under the lock, persists when it reports a change and
// then notifies OnChange. It reports whether the change was applied.
func (engine *Engine) mutate(change func(progress *model.UserProgress) bool) bool {
	engine.mu.Lock()
	next := engine.progress.Clone()
	if !change(&next) {
		engine.mu.Unlock()
		return false
	}
	engine.progress = next
	engine.persistLocked()
	onChange := engine.hooks.OnChange
	snapshot := next.Clone()
	engine.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
	return true
}

func (engine *Engine) persistLocked() {
	if err := engine.store.Save(engine.progress.Clone()); err != nil {
		slog.Error("Failed to save progress", "error", err)
	}
}

func (engine *Engine) cuePlayer() CuePlayer {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cues
}

func isSlot(slot model.SoundSlot) bool {
	for _, known := range model.SoundSlots {
		if known == slot {
			return true
		}
	}
	return false
}
