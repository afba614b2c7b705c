package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-grab/internal/config"
)

func TestParseMillis(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"2000", 2 * time.Second, false},
		{" 0 ", 0, false},
		{"60000", config.MaxDelay, false},
		{"60001", 0, true},
		{"-5", 0, true},
		{"soon", 0, true},
	}

	for _, test := range tests {
		d, err := parseMillis(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("parseMillis(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if !test.wantErr && d != test.expected {
			t.Errorf("parseMillis(%q) = %s, expected %s", test.input, d, test.expected)
		}
	}
}

func TestSettingsDialogSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	var saved config.Options
	sd := NewSettingsDialog(settings, window, func(opts config.Options) {
		saved = opts
	})
	sd.loadCurrentSettings()

	if sd.simulatedDelayEntry.Text != "2000" || sd.clearDelayEntry.Text != "3000" {
		t.Fatalf("Expected defaults in entries, got %q / %q", sd.simulatedDelayEntry.Text, sd.clearDelayEntry.Text)
	}

	sd.simulatedDelayEntry.SetText("500")
	sd.clearDelayEntry.SetText("bogus")
	sd.onSave(true)

	if settings.GetSimulatedDelay() != 500*time.Millisecond {
		t.Errorf("Expected simulated delay 500ms, got %s", settings.GetSimulatedDelay())
	}
	if settings.GetStatusClearDelay() != config.DefaultStatusClearDelay {
		t.Errorf("Invalid input should keep the stored value, got %s", settings.GetStatusClearDelay())
	}
	if saved.SimulatedDelay != 500*time.Millisecond {
		t.Errorf("Callback should receive saved options, got %+v", saved)
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	settings := config.NewSettings(app)

	called := false
	sd := NewSettingsDialog(settings, app.NewWindow("test"), func(config.Options) { called = true })
	sd.loadCurrentSettings()
	sd.simulatedDelayEntry.SetText("1")
	sd.onSave(false)

	if called {
		t.Error("Cancel should not invoke the callback")
	}
	if settings.GetSimulatedDelay() != config.DefaultSimulatedDelay {
		t.Error("Cancel should not store values")
	}
}
