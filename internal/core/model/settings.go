package model

// Language of the UI strings.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
)

// Settings is the user preference record. The core only reads it.
type Settings struct {
	SoundEnabled         bool
	SoundVolume          float64
	MusicEnabled         bool
	MusicVolume          float64
	NotificationsEnabled bool
	DarkMode             bool
	Language             Language
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		SoundVolume:          0.8,
		MusicEnabled:         false,
		MusicVolume:          0.5,
		NotificationsEnabled: true,
		DarkMode:             true,
		Language:             LanguagePortuguese,
	}
}

// Clamp forces volumes into [0,1] and the language into a known value.
func (settings Settings) Clamp() Settings {
	settings.SoundVolume = clampUnit(settings.SoundVolume)
	settings.MusicVolume = clampUnit(settings.MusicVolume)
	switch settings.Language {
	case LanguageEnglish, LanguagePortuguese:
	default:
		settings.Language = LanguagePortuguese
	}
	return settings
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
