package update

import (
	"github.com/sandeepkv93/zenith/internal/config"
	"github.com/sandeepkv93/zenith/internal/storage"
	"github.com/sandeepkv93/zenith/internal/views"
	"go.uber.org/zap"
)

// loadTheme picks the configured theme, then lets a persisted choice win.
// A failing settings read keeps the configured theme.
func (m *Model) loadTheme() {
	m.theme = m.cfg.Theme
	if !views.IsTheme(m.theme) {
		m.theme = config.DefaultTheme
	}
	settings, ok := m.store.(storage.SettingsStore)
	if !ok {
		return
	}
	saved, found, err := settings.GetSetting(m.ctx, storage.SettingTheme)
	if err != nil {
		m.logger.Warn("load theme setting", zap.Error(err))
		return
	}
	if found && views.IsTheme(saved) {
		m.theme = saved
	}
}

func (m *Model) cycleTheme() {
	next := views.NextTheme(m.theme)
	if settings, ok := m.store.(storage.SettingsStore); ok {
		if err := settings.SetSetting(m.ctx, storage.SettingTheme, next); err != nil {
			m.reportError("save theme", "", err)
			return
		}
	}
	m.theme = next
	m.status = StatusBar{Text: "theme: " + next}
}
