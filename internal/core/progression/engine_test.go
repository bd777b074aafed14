package progression

import (
	"errors"
	"sync"
	"testing"

	"aestheticpomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load() (model.UserProgress, error) {
	args := m.Called()
	return args.Get(0).(model.UserProgress), args.Error(1)
}

func (m *MockStore) Save(progress model.UserProgress) error {
	args := m.Called(progress)
	return args.Error(0)
}

type cueRecorder struct {
	mu       sync.Mutex
	cues     []model.Cue
	themes   []model.ThemeID
	equipped []map[model.SoundSlot]string
}

func (rec *cueRecorder) PlayCue(cue model.Cue) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.cues = append(rec.cues, cue)
}

func (rec *cueRecorder) SetEquippedCues(equipped map[model.SoundSlot]string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.equipped = append(rec.equipped, equipped)
}

func (rec *cueRecorder) SetTheme(id model.ThemeID) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.themes = append(rec.themes, id)
}

func newEngine(t *testing.T, initial model.UserProgress, achievements []model.Achievement) (*Engine, *MockStore, *cueRecorder) {
	t.Helper()
	store := new(MockStore)
	store.On("Load").Return(initial, nil)
	store.On("Save", mock.Anything).Return(nil)

	engine := New(store, Config{Achievements: achievements})
	cues := &cueRecorder{}
	engine.SetCuePlayer(cues)
	cues.themes, cues.equipped = nil, nil
	return engine, store, cues
}

func withXP(xp int) model.UserProgress {
	progress := model.DefaultProgress()
	progress.XP = xp
	return progress
}

func TestNewFallsBackToDefaultsOnLoadError(t *testing.T) {
	store := new(MockStore)
	store.On("Load").Return(model.UserProgress{}, errors.New("corrupt"))

	engine := New(store, Config{})

	assert.Equal(t, model.DefaultProgress(), engine.Snapshot())
}

func TestSetCuePlayerPushesEquippedState(t *testing.T) {
	store := new(MockStore)
	initial := model.DefaultProgress()
	initial.UnlockedThemes = append(initial.UnlockedThemes, model.ThemeOcean)
	initial.EquippedTheme = model.ThemeOcean
	store.On("Load").Return(initial, nil)
	engine := New(store, Config{})
	cues := &cueRecorder{}

	engine.SetCuePlayer(cues)

	assert.Equal(t, []model.ThemeID{model.ThemeOcean}, cues.themes)
	require.Len(t, cues.equipped, 1)
	assert.Equal(t, model.DefaultEquippedSounds(), cues.equipped[0])
}

func TestAddProgressWithoutAchievements(t *testing.T) {
	engine, store, cues := newEngine(t, model.DefaultProgress(), []model.Achievement{})

	engine.AddProgress(25)

	progress := engine.Snapshot()
	assert.Equal(t, 250, progress.XP)
	assert.Equal(t, 250, progress.LifetimeXP)
	assert.Equal(t, 2, progress.Level)
	assert.Equal(t, 1, progress.CompletedPomodoros)
	assert.Equal(t, 25, progress.TotalMinutes)
	assert.Equal(t, 1, progress.Streak)
	assert.Equal(t, []model.Cue{model.CueLevelUp}, cues.cues)
	store.AssertNumberOfCalls(t, "Save", 1)
	store.AssertCalled(t, "Save", progress)
}

func TestAddProgressGrantsAchievementsAndLevelUp(t *testing.T) {
	engine, _, cues := newEngine(t, model.DefaultProgress(), nil)

	var (
		order    []string
		levelUps [][2]int
		changes  int
	)
	engine.SetHooks(Hooks{
		OnAchievement: func(achievement model.Achievement) { order = append(order, achievement.ID) },
		OnLevelUp:     func(previous, current int) { levelUps = append(levelUps, [2]int{previous, current}) },
		OnChange:      func(model.UserProgress) { changes++ },
	})

	engine.AddProgress(25)

	progress := engine.Snapshot()
	assert.Equal(t, 285, progress.XP)
	assert.Equal(t, 285, progress.LifetimeXP)
	assert.Equal(t, 3, progress.Level)
	assert.Equal(t, []string{"pomodoro_1", "minutes_25"}, progress.Achievements)
	assert.Equal(t, []string{"pomodoro_1", "minutes_25"}, order)
	assert.Equal(t, [][2]int{{1, 3}}, levelUps)
	assert.Equal(t, 1, changes)
	assert.Equal(t, []model.Cue{model.CueSuccess, model.CueSuccess, model.CueLevelUp}, cues.cues)
}

func TestAchievementsAreGrantedOnce(t *testing.T) {
	engine, _, _ := newEngine(t, model.DefaultProgress(), nil)

	engine.AddProgress(25)
	engine.AddProgress(25)

	progress := engine.Snapshot()
	assert.Equal(t, []string{"pomodoro_1", "minutes_25"}, progress.Achievements)
	assert.Equal(t, 535, progress.XP)
	assert.Equal(t, 2, progress.CompletedPomodoros)
	assert.Equal(t, 50, progress.TotalMinutes)
}

func TestDeepWorkerAfterFourInARow(t *testing.T) {
	engine, _, _ := newEngine(t, model.DefaultProgress(), nil)

	for i := 0; i < 3; i++ {
		engine.AddProgress(1)
	}
	assert.False(t, engine.Snapshot().HasAchievement("deep_worker"))

	engine.AddProgress(1)
	assert.True(t, engine.Snapshot().HasAchievement("deep_worker"))
}

func TestStreakResetBreaksDeepWorkerRun(t *testing.T) {
	engine, _, _ := newEngine(t, model.DefaultProgress(), nil)

	engine.AddProgress(1)
	engine.AddProgress(1)
	engine.ResetStreak()
	engine.AddProgress(1)
	engine.AddProgress(1)

	progress := engine.Snapshot()
	assert.Equal(t, 2, progress.Streak)
	assert.False(t, progress.HasAchievement("deep_worker"))
}

func TestLegacyRecordSeedsLifetimeXP(t *testing.T) {
	legacy := model.DefaultProgress()
	legacy.TotalMinutes = 30
	legacy.CompletedPomodoros = 1
	legacy.XP = 20
	engine, _, _ := newEngine(t, legacy, []model.Achievement{})

	engine.AddProgress(10)

	progress := engine.Snapshot()
	assert.Equal(t, 400, progress.LifetimeXP)
	assert.Equal(t, 120, progress.XP)
}

func TestAddProgressIgnoresNonPositiveMinutes(t *testing.T) {
	engine, store, _ := newEngine(t, model.DefaultProgress(), nil)

	engine.AddProgress(0)
	engine.AddProgress(-3)

	assert.Equal(t, model.DefaultProgress(), engine.Snapshot())
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestLevelNeverDecreases(t *testing.T) {
	initial := model.DefaultProgress()
	initial.Level = 9
	engine, _, cues := newEngine(t, initial, []model.Achievement{})

	engine.AddProgress(25)

	assert.Equal(t, 9, engine.Snapshot().Level)
	assert.NotContains(t, cues.cues, model.CueLevelUp)
}

func TestUnlockThemeInsufficientFunds(t *testing.T) {
	engine, store, cues := newEngine(t, withXP(150), nil)

	ok := engine.UnlockTheme(model.ThemeCyberpunk, 500)

	assert.False(t, ok)
	assert.Equal(t, withXP(150), engine.Snapshot())
	assert.Empty(t, cues.cues)
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUnlockThemeSpendsXPOnly(t *testing.T) {
	initial := withXP(700)
	initial.LifetimeXP = 900
	initial.Level = model.LevelFor(900)
	engine, store, cues := newEngine(t, initial, nil)

	ok := engine.UnlockTheme(model.ThemeCyberpunk, 500)

	require.True(t, ok)
	progress := engine.Snapshot()
	assert.Equal(t, 200, progress.XP)
	assert.Equal(t, 900, progress.LifetimeXP)
	assert.Equal(t, initial.Level, progress.Level)
	assert.True(t, progress.HasTheme(model.ThemeCyberpunk))
	assert.Equal(t, model.DefaultTheme, progress.EquippedTheme, "buying does not equip")
	assert.Equal(t, []model.Cue{model.CuePurchase}, cues.cues)
	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestUnlockThemeRejectsUnknownTheme(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(1000), nil)

	assert.False(t, engine.UnlockTheme("holographic", 10))
	assert.Equal(t, 1000, engine.Snapshot().XP)
}

func TestUnlockDurationIsIdempotentAndSorted(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(2000), nil)

	assert.True(t, engine.UnlockDuration(60, 1000))
	assert.True(t, engine.UnlockDuration(40, 500))
	assert.False(t, engine.UnlockDuration(40, 500))

	progress := engine.Snapshot()
	assert.Equal(t, []int{25, 40, 60}, progress.UnlockedDurations)
	assert.Equal(t, 500, progress.XP)
}

func TestUnlockSound(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(100), nil)

	assert.True(t, engine.UnlockSound("click_retro", 100))
	assert.False(t, engine.UnlockSound("click_retro", 0))
	assert.False(t, engine.UnlockSound("alarm_zen", 300))

	progress := engine.Snapshot()
	assert.True(t, progress.HasSound("click_retro"))
	assert.False(t, progress.HasSound("alarm_zen"))
	assert.Zero(t, progress.XP)
}

func TestUnlockRejectsNegativeCost(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(0), nil)

	assert.False(t, engine.UnlockSound("click_mech", -200))
	assert.Zero(t, engine.Snapshot().XP)
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name   string
		xp     int
		itemID string
		want   PurchaseResult
	}{
		{"theme", 5000, "theme_" + string(model.ThemeCyberpunk), Purchased},
		{"sound", 200, "click_mech", Purchased},
		{"duration", 500, "duration_40", Purchased},
		{"break", 200, "break_10", Purchased},
		{"already owned", 5000, "click_default", AlreadyOwned},
		{"owned default theme", 5000, "theme_" + string(model.DefaultTheme), AlreadyOwned},
		{"insufficient", 100, "duration_60", InsufficientFunds},
		{"unknown", 5000, "golden_hourglass", UnknownItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _, _ := newEngine(t, withXP(tt.xp), nil)

			result := engine.Purchase(tt.itemID)

			assert.Equal(t, tt.want, result, result.String())
		})
	}
}

func TestPurchaseDurationMakesItStartable(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(500), nil)

	require.Equal(t, Purchased, engine.Purchase("duration_40"))

	progress := engine.Snapshot()
	assert.True(t, progress.HasDuration(40))
	assert.Zero(t, progress.XP)
}

func TestEquipTheme(t *testing.T) {
	initial := model.DefaultProgress()
	initial.UnlockedThemes = append(initial.UnlockedThemes, model.ThemeForest)
	engine, store, cues := newEngine(t, initial, nil)

	engine.EquipTheme(model.ThemeOcean)
	assert.Equal(t, model.DefaultTheme, engine.Snapshot().EquippedTheme)
	store.AssertNotCalled(t, "Save", mock.Anything)

	engine.EquipTheme(model.ThemeForest)
	assert.Equal(t, model.ThemeForest, engine.Snapshot().EquippedTheme)
	assert.Equal(t, []model.ThemeID{model.ThemeForest}, cues.themes)
	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestEquipSound(t *testing.T) {
	initial := model.DefaultProgress()
	initial.UnlockedSounds = append(initial.UnlockedSounds, "alarm_zen")
	engine, _, cues := newEngine(t, initial, nil)

	engine.EquipSound(model.SlotAlarm, "alarm_digital")
	engine.EquipSound("horn", "alarm_zen")
	assert.Empty(t, cues.equipped)

	engine.EquipSound(model.SlotAlarm, "alarm_zen")

	assert.Equal(t, "alarm_zen", engine.Snapshot().EquippedSounds[model.SlotAlarm])
	require.Len(t, cues.equipped, 1)
	assert.Equal(t, "alarm_zen", cues.equipped[0][model.SlotAlarm])
}

func TestUpdateProfileTouchesProfileOnly(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(40), nil)

	engine.UpdateProfile("Rui", "https://example.com/rui.png")

	progress := engine.Snapshot()
	assert.Equal(t, "Rui", progress.Name)
	assert.Equal(t, "https://example.com/rui.png", progress.AvatarRef)
	assert.Equal(t, 40, progress.XP)
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	store := new(MockStore)
	store.On("Load").Return(model.DefaultProgress(), nil)
	store.On("Save", mock.Anything).Return(errors.New("read-only filesystem"))
	engine := New(store, Config{Achievements: []model.Achievement{}})

	engine.AddProgress(25)

	assert.Equal(t, 250, engine.Snapshot().XP, "memory state survives a failed write")
}

func TestSnapshotIsACopy(t *testing.T) {
	engine, _, _ := newEngine(t, model.DefaultProgress(), nil)

	snapshot := engine.Snapshot()
	snapshot.UnlockedDurations[0] = 90
	snapshot.EquippedSounds[model.SlotClick] = "click_mech"

	fresh := engine.Snapshot()
	assert.Equal(t, []int{25}, fresh.UnlockedDurations)
	assert.Equal(t, "click_default", fresh.EquippedSounds[model.SlotClick])
}

func TestLevelProgress(t *testing.T) {
	engine, _, _ := newEngine(t, model.DefaultProgress(), []model.Achievement{})
	engine.AddProgress(25)

	progress := engine.LevelProgress()

	assert.Equal(t, 2, progress.Level)
	assert.Equal(t, 33, progress.XPToNext)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	engine, _, _ := newEngine(t, withXP(10000), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			engine.AddProgress(1)
		}()
		go func() {
			defer wg.Done()
			engine.UnlockDuration(40, 500)
		}()
	}
	wg.Wait()

	progress := engine.Snapshot()
	assert.Equal(t, 50, progress.CompletedPomodoros)
	assert.Equal(t, 50, progress.TotalMinutes)
	assert.Equal(t, []int{25, 40}, progress.UnlockedDurations)
	assert.GreaterOrEqual(t, progress.LifetimeXP, 500)
}
