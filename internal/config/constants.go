package config

import "time"

// AppName names the data directory and the window titles.
const AppName = "Aesthetic Pomodoro"

// DataDirName is the directory created under the user config dir.
const DataDirName = "aesthetic-pomodoro"

const (
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultTickInterval = time.Second
)
