package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"aestheticpomodoro/internal/core/model"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundEnabled         *bool    `yaml:"sound_enabled"`
	SoundVolume          *float64 `yaml:"sound_volume"`
	MusicEnabled         *bool    `yaml:"music_enabled"`
	MusicVolume          *float64 `yaml:"music_volume"`
	NotificationsEnabled *bool    `yaml:"notifications_enabled"`
	DarkMode             *bool    `yaml:"dark_mode"`
	Language             string   `yaml:"language"`
}

// SettingsStore reads and writes the user preferences file.
type SettingsStore struct {
	path string
}

// NewSettingsStore keeps settings.yaml inside dir.
func NewSettingsStore(dir string) *SettingsStore {
	return &SettingsStore{path: filepath.Join(dir, settingsFileName)}
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *SettingsStore) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *SettingsStore) Save(settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Clamp()
	fileData := yamlSettings{
		SoundEnabled:         &settings.SoundEnabled,
		SoundVolume:          &settings.SoundVolume,
		MusicEnabled:         &settings.MusicEnabled,
		MusicVolume:          &settings.MusicVolume,
		NotificationsEnabled: &settings.NotificationsEnabled,
		DarkMode:             &settings.DarkMode,
		Language:             string(settings.Language),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.SoundVolume != nil {
		settings.SoundVolume = *fileData.SoundVolume
	}
	if fileData.MusicEnabled != nil {
		settings.MusicEnabled = *fileData.MusicEnabled
	}
	if fileData.MusicVolume != nil {
		settings.MusicVolume = *fileData.MusicVolume
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	if fileData.DarkMode != nil {
		settings.DarkMode = *fileData.DarkMode
	}
	if fileData.Language != "" {
		settings.Language = model.Language(fileData.Language)
	}
	*settings = settings.Clamp()
}
