package tray

import (
	"motionlab/internal/core/theme"

	"fyne.io/fyne/v2"
)

// TrayApp is the part of desktop.App the tray needs.
type TrayApp interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTheme       func(theme.Selection)
	OnOpenModal   func()
	OnLoading     func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app     TrayApp
	current theme.Selection
	themes  map[theme.Selection]*fyne.MenuItem
	menu    *fyne.Menu
}

// New creates a tray manager with the provided callbacks. app may be nil when
// the driver has no system tray; the menu is still built.
func New(app TrayApp, current theme.Selection, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:     app,
		current: current,
		themes:  make(map[theme.Selection]*fyne.MenuItem),
	}

	themeItems := make([]*fyne.MenuItem, 0, len(theme.All()))
	for _, selection := range theme.All() {
		selection := selection
		item := fyne.NewMenuItem(selection.String(), func() {
			if callbacks.OnTheme != nil {
				callbacks.OnTheme(selection)
			}
		})
		manager.themes[selection] = item
		themeItems = append(themeItems, item)
	}
	themeMenu := fyne.NewMenuItem("Theme", nil)
	themeMenu.ChildMenu = fyne.NewMenu("", themeItems...)

	manager.menu = fyne.NewMenu("MotionLab",
		fyne.NewMenuItem("Show playground", action(callbacks.OnShow)),
		themeMenu,
		fyne.NewMenuItem("Open modal", action(callbacks.OnOpenModal)),
		fyne.NewMenuItem("Start loading", action(callbacks.OnLoading)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", action(callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", action(callbacks.OnQuit)),
	)
	manager.SetTheme(current)
	return manager
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// SetTheme marks selection as the checked theme.
func (manager *Manager) SetTheme(selection theme.Selection) {
	manager.current = selection
	for candidate, item := range manager.themes {
		item.Checked = candidate == selection
	}
	manager.refreshMenu()
}

// Theme returns the checked theme.
func (manager *Manager) Theme() theme.Selection {
	return manager.current
}

func action(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
