package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aestheticpomodoro/internal/core/model"
	"aestheticpomodoro/internal/core/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKV(t *testing.T) (*FileKV, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	return kv, dir
}

func TestFileKVRoundTrip(t *testing.T) {
	kv, dir := newKV(t)

	require.NoError(t, kv.Set("alpha", []byte(`{"a":1}`)))
	require.NoError(t, kv.Set("alpha", []byte(`{"a":2}`)))

	data, err := kv.Get("alpha")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, "alpha.json", entries[0].Name())
}

func TestFileKVMissingKey(t *testing.T) {
	kv, _ := newKV(t)

	_, err := kv.Get("missing")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	kv, _ := newKV(t)

	assert.Error(t, kv.Set("../escape", []byte("x")))
	_, err := kv.Get("a/b")
	assert.Error(t, err)
}

func TestProgressStoreDefaultsWhenEmpty(t *testing.T) {
	kv, _ := newKV(t)

	progress, err := NewProgressStore(kv).Load()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultProgress(), progress)
}

func TestProgressStoreRoundTrip(t *testing.T) {
	kv, _ := newKV(t)
	store := NewProgressStore(kv)

	saved := model.DefaultProgress()
	saved.XP = 150
	saved.LifetimeXP = 900
	saved.Level = 5
	saved.CompletedPomodoros = 3
	saved.TotalMinutes = 75
	saved.Streak = 2
	saved.UnlockedThemes = append(saved.UnlockedThemes, model.ThemeCyberpunk)
	saved.EquippedTheme = model.ThemeCyberpunk
	saved.UnlockedDurations = []int{25, 40}
	saved.Achievements = []string{"pomodoro_1"}
	saved.Name = "Ana"
	saved.AvatarRef = "file:///avatar.png"
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestProgressStoreMergesPartialRecord(t *testing.T) {
	kv, _ := newKV(t)
	require.NoError(t, kv.Set(ProgressKey, []byte(`{
		"xp": 40,
		"totalMinutes": 30,
		"unlockedDurations": [60, 25, 40, 25],
		"unlockedThemes": ["ocean"],
		"equippedTheme": "forest",
		"equippedSounds": {"click": "click_retro"},
		"achievements": ["pomodoro_1", "pomodoro_1"]
	}`)))

	progress, err := NewProgressStore(kv).Load()

	require.NoError(t, err)
	assert.Equal(t, 40, progress.XP)
	assert.Equal(t, 1, progress.Level)
	assert.Equal(t, []int{25, 40, 60}, progress.UnlockedDurations)
	assert.True(t, progress.HasTheme(model.DefaultTheme))
	assert.True(t, progress.HasTheme(model.ThemeOcean))
	assert.Equal(t, model.DefaultTheme, progress.EquippedTheme, "unowned equipped theme falls back")
	assert.Equal(t, "click_retro", progress.EquippedSounds[model.SlotClick])
	assert.Equal(t, "alarm_default", progress.EquippedSounds[model.SlotAlarm])
	assert.True(t, progress.HasSound("click_retro"))
	assert.Equal(t, []string{"pomodoro_1"}, progress.Achievements)
	assert.Equal(t, model.DefaultProfileName, progress.Name)
}

func TestProgressStoreCorruptEntry(t *testing.T) {
	kv, _ := newKV(t)
	require.NoError(t, kv.Set(ProgressKey, []byte(`{not json`)))

	progress, err := NewProgressStore(kv).Load()

	assert.Error(t, err)
	assert.Equal(t, model.DefaultProgress(), progress)
}

type failingKV struct{}

func (failingKV) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingKV) Set(string, []byte) error  { return errors.New("disk on fire") }

func TestProgressStorePropagatesIOErrors(t *testing.T) {
	store := NewProgressStore(failingKV{})

	progress, err := store.Load()
	assert.ErrorContains(t, err, "disk on fire")
	assert.Equal(t, model.DefaultProgress(), progress)

	assert.ErrorContains(t, store.Save(model.DefaultProgress()), "save progress")
}

func TestSettingsStoreDefaults(t *testing.T) {
	store := NewSettingsStore(t.TempDir())

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettingsStoreRoundTrip(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "conf"))
	settings := model.Settings{
		SoundEnabled:         false,
		SoundVolume:          0.25,
		MusicEnabled:         true,
		MusicVolume:          1,
		NotificationsEnabled: false,
		DarkMode:             false,
		Language:             model.LanguageEnglish,
	}

	require.NoError(t, store.Save(settings))
	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsStorePartialFileKeepsDefaults(t *testing.T) {
	store := NewSettingsStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte("sound_volume: 3.5\nlanguage: fr\ndark_mode: false\n"), 0o644))

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, 1.0, settings.SoundVolume)
	assert.Equal(t, model.LanguagePortuguese, settings.Language)
	assert.False(t, settings.DarkMode)
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, 0.5, settings.MusicVolume)
}

func TestSettingsStoreInvalidYAML(t *testing.T) {
	store := NewSettingsStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte("sound_volume: [oops"), 0o644))

	settings, err := store.Load()

	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestProgressStoreWritesEmptySetsAsArrays(t *testing.T) {
	kv, _ := newKV(t)
	engine := progression.New(NewProgressStore(kv), progression.Config{})

	engine.UpdateProfile("Ana", "")

	data, err := kv.Get(ProgressKey)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"achievements":[]`)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"name":"Ana"`)
}

func TestProgressStoreSaveFillsNilSets(t *testing.T) {
	kv, _ := newKV(t)
	store := NewProgressStore(kv)

	require.NoError(t, store.Save(model.UserProgress{Level: 1}))

	data, err := kv.Get(ProgressKey)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}
