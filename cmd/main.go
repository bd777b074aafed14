package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	appstate "aestheticpomodoro/internal/app"
	"aestheticpomodoro/internal/audio"
	"aestheticpomodoro/internal/config"
	"aestheticpomodoro/internal/core/model"
	"aestheticpomodoro/internal/core/progression"
	"aestheticpomodoro/internal/core/timekeeper"
	"aestheticpomodoro/internal/logger"
	"aestheticpomodoro/internal/platform"
	"aestheticpomodoro/internal/storage"
	"aestheticpomodoro/internal/ui/home"
	"aestheticpomodoro/internal/ui/notify"
	"aestheticpomodoro/internal/ui/palette"
	"aestheticpomodoro/internal/ui/preferences"
	"aestheticpomodoro/internal/ui/toast"
	"aestheticpomodoro/internal/ui/tray"
	"aestheticpomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appID             = "com.aestheticpomodoro.app"
	presenceThreshold = 5 * time.Minute
	presenceInterval  = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(config.AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		// Bring the running window forward instead of starting a second writer.
		return platform.SignalRunningInstance(config.AppName)
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	dataDir, err := platform.ResolveDataDir(cfg.DataDir, config.DataDirName)
	if err != nil {
		return err
	}

	logCloser := logger.Init(loggerConfig(cfg, dataDir))
	defer logCloser.Close()
	slog.Info("Starting", "data_dir", dataDir, "tick", cfg.TickInterval)

	kv, err := storage.NewFileKV(dataDir)
	if err != nil {
		return err
	}
	sounds, err := audio.NewService(audio.NewLogBackend(logger.For("audio")), 0)
	if err != nil {
		return err
	}
	defer sounds.Stop()

	engine := progression.New(storage.NewProgressStore(kv), progression.Config{})
	keeper := timekeeper.New(timekeeper.Config{TickInterval: cfg.TickInterval})
	state := appstate.New(engine, keeper, sounds, storage.NewSettingsStore(dataDir))

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))
	applyTheme(fyneApp, engine.Snapshot().EquippedTheme, state.Settings())

	toasts := toast.New(fyneApp, toast.DefaultVisible)
	prefsWindow := preferences.New(fyneApp, state.Settings(), state.UpdateSettings)

	mainWindow := home.New(fyneApp, config.AppName, home.Actions{
		Start:       state.StartFocus,
		TogglePause: state.TogglePause,
		GiveUp:      state.GiveUp,
		Purchase: func(itemID string) progression.PurchaseResult {
			result := engine.Purchase(itemID)
			if result.OK() {
				if item, err := model.ShopItemByID(itemID); err == nil {
					toasts.Show(toast.ForPurchase(item))
				}
			}
			return result
		},
		EquipTheme:      engine.EquipTheme,
		EquipSound:      engine.EquipSound,
		UpdateProfile:   engine.UpdateProfile,
		OpenPreferences: prefsWindow.Show,
	})

	var desktopApp desktop.App
	if candidate, ok := fyneApp.(desktop.App); ok {
		desktopApp = candidate
	} else {
		slog.Info("System tray unsupported on this platform")
	}
	trayManager := tray.New(desktopApp, tray.Icons{
		Idle:    resources.MustIcon(resources.IconApp),
		Running: resources.MustIcon(resources.IconRunning),
		Paused:  resources.MustIcon(resources.IconPaused),
	}, tray.Callbacks{
		OnOpen:        mainWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnStart: func() {
			state.StartFocus(engine.Snapshot().UnlockedDurations[0])
		},
		OnTogglePause: state.TogglePause,
		OnGiveUp:      state.GiveUp,
		OnQuit:        fyneApp.Quit,
	})
	trayManager.SetWindow(mainWindow.Window())
	keeper.SetShell(trayManager)

	scheduler := notify.NewScheduler(fyneApp, notify.DefaultMessage, keeper.NotificationDue)
	keeper.SetNotifier(scheduler)
	defer scheduler.CancelAll()

	engine.SetHooks(progression.Hooks{
		OnAchievement: func(achievement model.Achievement) {
			toasts.Show(toast.ForAchievement(achievement))
		},
		OnLevelUp: func(previous, current int) {
			toasts.Show(toast.ForLevelUp(previous, current))
		},
		OnChange: func(progress model.UserProgress) {
			level := model.ProgressFor(progress.EffectiveLifetimeXP(), progress.Level)
			fyne.Do(func() {
				mainWindow.SetProgress(progress, level)
				applyTheme(fyneApp, progress.EquippedTheme, state.Settings())
			})
		},
	})
	mainWindow.SetProgress(engine.Snapshot(), engine.LevelProgress())

	state.OnSettingsChange(func(settings model.Settings) {
		fyne.Do(func() {
			prefsWindow.UpdateSettings(settings)
			applyTheme(fyneApp, engine.Snapshot().EquippedTheme, settings)
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go forwardEvents(keeper.Subscribe(32), mainWindow, trayManager)
	go state.Run(ctx)
	go platform.NewPresenceMonitor(platform.NewIdleProvider(), presenceThreshold, presenceInterval, keeper.SetAppState).Run(ctx)
	go guard.Serve(func() {
		fyne.Do(mainWindow.Show)
	})

	mainWindow.Show()
	fyneApp.Run()

	cancel()
	slog.Info("Stopped")
	return nil
}

// forwardEvents mirrors timer events into the window and the tray until the
// timer closes the channel.
func forwardEvents(events <-chan timekeeper.Event, window *home.Window, trayManager *tray.Manager) {
	for event := range events {
		if event.Type == timekeeper.EventStateChange {
			trayManager.SetState(event.State)
		}
		if event.Type != timekeeper.EventStateChange && event.Type != timekeeper.EventProgress {
			continue
		}
		fyne.Do(func() {
			window.HandleEvent(event)
		})
	}
}

func applyTheme(fyneApp fyne.App, id model.ThemeID, settings model.Settings) {
	if current, ok := fyneApp.Settings().Theme().(*palette.Theme); ok && current.ID() == id && current.Dark() == settings.DarkMode {
		return
	}
	fyneApp.Settings().SetTheme(palette.New(id, settings.DarkMode))
}

func loggerConfig(cfg *config.Config, dataDir string) logger.Config {
	logConfig := logger.DefaultConfig()
	if cfg.IsDevelopment() {
		logConfig = logger.DevelopmentConfig()
	}
	if cfg.LogLevel != "" {
		logConfig.Level = cfg.LogLevel
	}
	logConfig.Format = cfg.LogFormat
	logConfig.Environment = cfg.Environment
	if cfg.LogToFile {
		logConfig.FilePath = filepath.Join(dataDir, "logs", "app.log")
	}
	return logConfig
}
