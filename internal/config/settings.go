package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySimulatedDelay   = "simulated_delay_ms"
	KeyStatusClearDelay = "status_clear_delay_ms"
)

// Settings manages application configuration stored in Fyne preferences.
// The display mode is deliberately not stored here.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSimulatedDelay returns how long a simulated download takes
func (s *Settings) GetSimulatedDelay() time.Duration {
	return s.getDuration(KeySimulatedDelay, DefaultSimulatedDelay)
}

// SetSimulatedDelay sets how long a simulated download takes
func (s *Settings) SetSimulatedDelay(d time.Duration) {
	s.setDuration(KeySimulatedDelay, d)
}

// GetStatusClearDelay returns how long a final status stays visible
func (s *Settings) GetStatusClearDelay() time.Duration {
	return s.getDuration(KeyStatusClearDelay, DefaultStatusClearDelay)
}

// SetStatusClearDelay sets how long a final status stays visible
func (s *Settings) SetStatusClearDelay(d time.Duration) {
	s.setDuration(KeyStatusClearDelay, d)
}

// Options returns the stored timings
func (s *Settings) Options() Options {
	return Options{
		SimulatedDelay:   s.GetSimulatedDelay(),
		StatusClearDelay: s.GetStatusClearDelay(),
	}
}

func (s *Settings) getDuration(key string, fallback time.Duration) time.Duration {
	ms := s.app.Preferences().IntWithFallback(key, -1)
	if ms < 0 {
		s.setDuration(key, fallback)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Settings) setDuration(key string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	s.app.Preferences().SetInt(key, int(d/time.Millisecond))
}
