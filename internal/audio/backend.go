package audio

import "log/slog"

// Clip is a loaded sound ready for playback.
type Clip struct {
	ID  string
	URL string
}

// Backend performs the actual decoding and playback.
type Backend interface {
	Load(id, url string) (Clip, error)
	Release(clip Clip)
	Play(clip Clip, volume float64) error
	PlayMusic(url string, volume float64) error
	SetMusicVolume(volume float64)
	StopMusic()
}

// LogBackend records playback requests in the log instead of producing sound.
type LogBackend struct {
	log *slog.Logger
}

// NewLogBackend returns a backend writing to log.
func NewLogBackend(log *slog.Logger) *LogBackend {
	return &LogBackend{log: log}
}

func (backend *LogBackend) Load(id, url string) (Clip, error) {
	backend.log.Debug("Clip loaded", "sound", id, "url", url)
	return Clip{ID: id, URL: url}, nil
}

func (backend *LogBackend) Release(clip Clip) {
	backend.log.Debug("Clip released", "sound", clip.ID)
}

func (backend *LogBackend) Play(clip Clip, volume float64) error {
	backend.log.Info("Play sound", "sound", clip.ID, "volume", volume)
	return nil
}

func (backend *LogBackend) PlayMusic(url string, volume float64) error {
	backend.log.Info("Play music", "url", url, "volume", volume)
	return nil
}

func (backend *LogBackend) SetMusicVolume(volume float64) {
	backend.log.Debug("Music volume", "volume", volume)
}

func (backend *LogBackend) StopMusic() {
	backend.log.Info("Stop music")
}
