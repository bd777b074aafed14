package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"aestheticpomodoro/internal/core/model"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds how many decoded clips stay in memory.
const DefaultCacheSize = 16

// builtinCues maps the non-equippable cues onto catalog sounds.
var builtinCues = map[model.Cue]string{
	model.CueSuccess:  "alarm_digital",
	model.CueLevelUp:  "alarm_zen",
	model.CuePurchase: "click_mech",
}

// Service turns logical cues into playback on a Backend.
type Service struct {
	mu       sync.Mutex
	backend  Backend
	clips    *lru.Cache[string, Clip]
	equipped map[model.SoundSlot]string
	settings model.Settings
	theme    model.ThemeID
	music    string
}

// NewService builds a cue service; cacheSize <= 0 selects DefaultCacheSize.
func NewService(backend Backend, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	clips, err := lru.NewWithEvict[string, Clip](cacheSize, func(_ string, clip Clip) {
		backend.Release(clip)
	})
	if err != nil {
		return nil, fmt.Errorf("create clip cache: %w", err)
	}
	return &Service{
		backend:  backend,
		clips:    clips,
		equipped: model.DefaultEquippedSounds(),
		settings: model.DefaultSettings(),
		theme:    model.DefaultTheme,
	}, nil
}

// PlayCue plays the sound behind cue when sound is enabled.
func (service *Service) PlayCue(cue model.Cue) {
	service.mu.Lock()
	if !service.settings.SoundEnabled {
		service.mu.Unlock()
		return
	}
	item, ok := service.resolveLocked(cue)
	if !ok {
		service.mu.Unlock()
		slog.Warn("No sound for cue", "cue", cue)
		return
	}
	clip, err := service.clipLocked(item)
	volume := service.settings.SoundVolume
	service.mu.Unlock()

	if err != nil {
		slog.Warn("Failed to load sound", "cue", cue, "sound", item.ID, "error", err)
		return
	}
	if err := service.backend.Play(clip, volume); err != nil {
		slog.Warn("Failed to play sound", "cue", cue, "sound", item.ID, "error", err)
	}
}

// SetEquippedCues replaces the slot assignments.
func (service *Service) SetEquippedCues(equipped map[model.SoundSlot]string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.equipped = make(map[model.SoundSlot]string, len(equipped))
	for slot, id := range equipped {
		service.equipped[slot] = id
	}
}

// SetTheme switches the background music to the theme's track.
func (service *Service) SetTheme(id model.ThemeID) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.theme = id
	service.syncMusicLocked()
}

// SetVolumes applies the sound and music preferences.
func (service *Service) SetVolumes(settings model.Settings) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.settings = settings
	if service.music != "" {
		service.backend.SetMusicVolume(settings.MusicVolume)
	}
	service.syncMusicLocked()
}

// Stop silences the music and drops every cached clip.
func (service *Service) Stop() {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.music != "" {
		service.backend.StopMusic()
		service.music = ""
	}
	service.clips.Purge()
}

func (service *Service) syncMusicLocked() {
	desired := ""
	if service.settings.MusicEnabled {
		desired = model.ThemeByID(service.theme).MusicURL
	}
	if desired == service.music {
		return
	}
	if service.music != "" {
		service.backend.StopMusic()
		service.music = ""
	}
	if desired == "" {
		return
	}
	if err := service.backend.PlayMusic(desired, service.settings.MusicVolume); err != nil {
		slog.Warn("Failed to start music", "theme", service.theme, "error", err)
		return
	}
	service.music = desired
}

func (service *Service) resolveLocked(cue model.Cue) (model.ShopItem, bool) {
	if slot, ok := cue.Slot(); ok {
		if item, found := model.SoundByID(service.equipped[slot]); found {
			return item, true
		}
		return model.SoundByID(model.DefaultEquippedSounds()[slot])
	}
	id, ok := builtinCues[cue]
	if !ok {
		return model.ShopItem{}, false
	}
	return model.SoundByID(id)
}

func (service *Service) clipLocked(item model.ShopItem) (Clip, error) {
	if clip, ok := service.clips.Get(item.ID); ok {
		return clip, nil
	}
	clip, err := service.backend.Load(item.ID, item.SoundURL)
	if err != nil {
		return Clip{}, err
	}
	service.clips.Add(item.ID, clip)
	return clip, nil
}
