package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-grab/internal/config"
)

// SettingsDialog edits the download timings
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func(config.Options)

	// UI components
	simulatedDelayEntry *widget.Entry
	clearDelayEntry     *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func(config.Options)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func(config.Options)) {
	NewSettingsDialog(settings, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.simulatedDelayEntry = widget.NewEntry()
	sd.simulatedDelayEntry.SetPlaceHolder("milliseconds")
	sd.simulatedDelayEntry.Validator = validateMillis

	sd.clearDelayEntry = widget.NewEntry()
	sd.clearDelayEntry.SetPlaceHolder("milliseconds")
	sd.clearDelayEntry.Validator = validateMillis

	form := container.NewVBox(
		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Simulated download time (ms):"),
		sd.simulatedDelayEntry,

		widget.NewLabel("Keep status message for (ms):"),
		sd.clearDelayEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		SettingsTitle,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 260))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.simulatedDelayEntry.SetText(strconv.FormatInt(sd.settings.GetSimulatedDelay().Milliseconds(), 10))
	sd.clearDelayEntry.SetText(strconv.FormatInt(sd.settings.GetStatusClearDelay().Milliseconds(), 10))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if d, err := parseMillis(sd.simulatedDelayEntry.Text); err == nil {
		sd.settings.SetSimulatedDelay(d)
	}
	if d, err := parseMillis(sd.clearDelayEntry.Text); err == nil {
		sd.settings.SetStatusClearDelay(d)
	}

	if sd.onSaved != nil {
		sd.onSaved(sd.settings.Options())
	}
}

func parseMillis(text string) (time.Duration, error) {
	ms, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < 0 || d > config.MaxDelay {
		return 0, fmt.Errorf("must be between 0 and %d", config.MaxDelay.Milliseconds())
	}
	return d, nil
}

func validateMillis(text string) error {
	_, err := parseMillis(text)
	return err
}
