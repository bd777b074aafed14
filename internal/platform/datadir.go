package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ResolveDataDir returns the directory holding progress, settings and logs.
// A non-empty override wins; otherwise the OS config directory is used, with a
// home-relative fallback when it cannot be determined.
func ResolveDataDir(override, dirName string) (string, error) {
	dataDir := override
	if dataDir == "" {
		configDir, err := configDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(configDir, dirName)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dataDir, nil
}

func configDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}

func fallbackConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support")
	default:
		return filepath.Join(homeDir, ".config")
	}
}
