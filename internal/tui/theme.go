package tui

import (
	"time"

	"github.com/yume-app/yume/internal/prefs"
)

// Theme is the color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NightTheme picks dark between 18:00 and 06:00 local time.
func NightTheme(now time.Time) Theme {
	if h := now.Hour(); h >= 18 || h < 6 {
		return ThemeDark
	}
	return ThemeLight
}

// LoadTheme returns the saved theme. Without a saved choice, or if the
// store cannot be read, it falls back to NightTheme.
func LoadTheme(store prefs.Store, now time.Time) Theme {
	v, ok, err := store.Get(prefs.KeyTheme)
	if err != nil || !ok {
		return NightTheme(now)
	}
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		return Theme(v)
	}
	return NightTheme(now)
}
