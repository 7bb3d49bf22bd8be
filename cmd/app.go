package main

import (
	"errors"
	"fmt"
	"log/slog"

	"motionlab/internal/core/schedule"
	"motionlab/internal/core/theme"
	"motionlab/internal/core/transition"
	"motionlab/internal/logging"
	"motionlab/internal/platform"
	"motionlab/internal/storage"
	"motionlab/internal/ui/animation"
	"motionlab/internal/ui/playground"
	"motionlab/internal/ui/preferences"
	"motionlab/internal/ui/tray"
	"motionlab/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runApp(options rootOptions) error {
	level, err := logging.ParseLevel(options.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Warn("another instance is running")
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settingsPath, err := resolveSettingsPath(options.configPath)
	if err != nil {
		return err
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		logger.Warn("settings not loaded, using defaults", "path", settingsPath, "error", err)
		settings = preferences.DefaultSettings()
	}
	if options.theme != "" {
		selection, err := theme.Parse(options.theme)
		if err != nil {
			return err
		}
		settings.Theme = selection
	}

	fyneApp := app.NewWithID("com.motionlab.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoColor))

	scheduler := schedule.NewTimer(fyne.Do)
	manager := transition.NewManager(scheduler, transition.WithLogger(logger))
	go logTransitions(logger, manager.Subscribe(32))

	window := playground.New(fyneApp, playground.Deps{
		Manager:   manager,
		Scheduler: scheduler,
		Engine:    animation.New(animation.FyneFactory),
		Config:    settings.PlaygroundConfig(),
		Logger:    logger,
	}, settings.Theme)

	syncer := &settingsSync{
		settings: settings,
		persist: func(updated preferences.Settings) error {
			return storage.SaveSettings(settingsPath, updated)
		},
		logger: logger,
		window: window,
	}
	syncer.prefs = preferences.New(fyneApp, settings, syncer.saved)

	quit := func() {
		window.Close()
		fyneApp.Quit()
	}

	var trayApp tray.TrayApp
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.MustLogo(resources.LogoMono))
		trayApp = desktopApp
	} else {
		logger.Info("system tray unsupported on this platform")
		window.SetOnClose(quit)
	}
	syncer.tray = tray.New(trayApp, settings.Theme, tray.Callbacks{
		OnShow:        window.Show,
		OnTheme:       window.SetTheme,
		OnOpenModal:   window.OpenModal,
		OnLoading:     window.StartLoading,
		OnPreferences: syncer.prefs.Show,
		OnQuit:        quit,
	})

	window.SetOnThemeChanged(syncer.themeChanged)

	window.Show()
	fyneApp.Run()
	return nil
}

func resolveSettingsPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return storage.SettingsPath(configDir, appName), nil
}

func logTransitions(logger *slog.Logger, events <-chan transition.Event) {
	for event := range events {
		switch event.Type {
		case transition.EventFailed:
			logger.Warn("transition failed", "subject", event.Subject, "message", event.Message)
		default:
			logger.Debug("transition", "type", event.Type, "subject", event.Subject, "delay", event.Delay)
		}
	}
}
