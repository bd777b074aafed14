package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger writing to w with the configured handler and base attributes.
func New(config Config, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	return slog.New(handler.WithAttrs(config.BaseAttributes()))
}

// Init installs the default logger. When FilePath is set, output goes to stderr
// and a size-rotated file; the returned closer releases that file.
func Init(config Config) io.Closer {
	var (
		writer io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if config.FilePath != "" {
		rotating := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
		}
		writer = io.MultiWriter(os.Stderr, rotating)
		closer = rotating
	}

	slog.SetDefault(New(config, writer))
	slog.Info("Logging initialized", "level", config.LogLevel(), "file", config.FilePath)
	return closer
}

// For returns the default logger tagged with a component name.
func For(component string) *slog.Logger {
	return slog.Default().With(AttrKeyComponent, component)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
