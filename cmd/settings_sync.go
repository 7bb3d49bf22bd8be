package main

import (
	"log/slog"

	"motionlab/internal/core/theme"
	"motionlab/internal/ui/playground"
	"motionlab/internal/ui/preferences"
	"motionlab/internal/ui/tray"
)

// settingsSync keeps the persisted settings, the playground theme, the
// preferences window and the tray check mark in step.
type settingsSync struct {
	settings preferences.Settings
	persist  func(preferences.Settings) error
	logger   *slog.Logger
	window   *playground.Window
	prefs    *preferences.Window
	tray     *tray.Manager
}

// saved handles the preferences Save button. The new settings are stored
// before the theme is applied so the theme callback sees them as current.
func (syncer *settingsSync) saved(updated preferences.Settings) {
	previous := syncer.settings
	syncer.store(updated)
	if updated.Theme != previous.Theme {
		syncer.window.SetTheme(updated.Theme)
	}
	syncer.logger.Info("settings saved; timing changes apply on next start")
}

// themeChanged handles themes picked in the playground or the tray.
func (syncer *settingsSync) themeChanged(selection theme.Selection) {
	if syncer.tray != nil {
		syncer.tray.SetTheme(selection)
	}
	if selection == syncer.settings.Theme {
		return
	}
	updated := syncer.settings
	updated.Theme = selection
	syncer.store(updated)
	if syncer.prefs != nil {
		syncer.prefs.UpdateSettings(updated)
	}
}

func (syncer *settingsSync) store(updated preferences.Settings) {
	syncer.settings = updated
	if syncer.persist == nil {
		return
	}
	if err := syncer.persist(updated); err != nil {
		syncer.logger.Error("save settings", "error", err)
	}
}
