package ui

import (
	"context"
	"errors"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-grab/internal/config"
	"github.com/ytget/yt-grab/internal/download"
	"github.com/ytget/yt-grab/internal/model"
)

// DownloaderUI represents the main UI structure
type DownloaderUI struct {
	window      fyne.Window
	app         fyne.App
	downloadSvc download.Downloader
	settings    *config.Settings

	modeBtn     *widget.Button
	urlEntry    *widget.Entry
	validHint   *widget.Label
	invalidHint *widget.Label
	downloadBtn *widget.Button
	spinner     *widget.ProgressBarInfinite
	statusLabel *widget.Label
	recentBox   *fyne.Container
	recentCard  *widget.Card

	// renderMu serializes render; fyne.Do runs inline under the test driver
	renderMu     sync.Mutex
	appliedMode  model.DisplayMode
	lastRecordID string
}

// NewDownloaderUI creates the widget, places it in window and subscribes to
// service updates.
func NewDownloaderUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, settings *config.Settings) *DownloaderUI {
	ui := &DownloaderUI{
		window:      window,
		app:         app,
		downloadSvc: downloadSvc,
		settings:    settings,
	}

	window.SetTitle(model.AppTitle)

	// Set up callback for service updates
	ui.downloadSvc.SetUpdateCallback(ui.onSnapshot)

	ui.setupUI()

	snap := ui.downloadSvc.Snapshot()
	ui.appliedMode = snap.Mode
	ui.app.Settings().SetTheme(NewModeTheme(snap.Mode))
	ui.render(snap)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *DownloaderUI) setupUI() {
	if ui.settings != nil {
		ui.createMenu()
	}

	ui.modeBtn = widget.NewButton(model.IconMoon, ui.onToggleMode)
	ui.modeBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(model.AppTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(model.URLPlaceholder)
	ui.urlEntry.OnChanged = ui.downloadSvc.SetURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.validHint = widget.NewLabel(IconValid + " " + ValidURLHint)
	ui.validHint.Importance = widget.SuccessImportance
	ui.validHint.Hide()

	ui.invalidHint = widget.NewLabel(IconError + " " + model.InvalidURLHint)
	ui.invalidHint.Importance = widget.DangerImportance
	ui.invalidHint.Hide()

	ui.downloadBtn = widget.NewButton(IconDownload+" "+model.DownloadButtonText, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Hide()

	ui.recentBox = container.NewVBox()
	ui.recentCard = widget.NewCard(model.RecentTitle, "", ui.recentBox)
	ui.recentCard.Hide()

	topBar := container.NewBorder(nil, nil, nil, ui.modeBtn)
	form := container.NewVBox(
		title,
		ui.urlEntry,
		ui.validHint,
		ui.invalidHint,
		container.NewCenter(ui.downloadBtn),
		ui.spinner,
		ui.statusLabel,
		ui.recentCard,
	)

	ui.window.SetContent(container.NewBorder(topBar, nil, nil, nil, container.NewPadded(form)))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *DownloaderUI) createMenu() {
	settingsItem := fyne.NewMenuItem(SettingsTitle, ui.onShowSettings)
	modeItem := fyne.NewMenuItem("Toggle Dark Mode", ui.onToggleMode)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
		fyne.NewMenu("View", modeItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onSnapshot is called by the service from any goroutine. The passed snapshot
// may be stale once the closure runs, so the current one is rendered.
func (ui *DownloaderUI) onSnapshot(model.Snapshot) {
	fyne.Do(func() {
		ui.render(ui.downloadSvc.Snapshot())
	})
}

// render updates every widget from snap. Must run on the UI goroutine.
func (ui *DownloaderUI) render(snap model.Snapshot) {
	ui.renderMu.Lock()
	defer ui.renderMu.Unlock()

	if snap.Mode != ui.appliedMode {
		ui.appliedMode = snap.Mode
		ui.app.Settings().SetTheme(NewModeTheme(snap.Mode))
	}
	ui.modeBtn.SetText(model.ModeIcon(snap.Mode))

	// The entry owns the text while typing; it is only reset when a new
	// download has been recorded.
	if n := len(snap.Recent); n > 0 && snap.Recent[n-1].ID != ui.lastRecordID {
		ui.lastRecordID = snap.Recent[n-1].ID
		if ui.urlEntry.Text != snap.URL {
			ui.urlEntry.SetText(snap.URL)
		}
	}

	// Entry has no border colour hook, so a valid URL gets its own cue
	if snap.Valid {
		ui.validHint.Show()
	} else {
		ui.validHint.Hide()
	}
	if snap.ShowInvalidHint {
		ui.invalidHint.Show()
	} else {
		ui.invalidHint.Hide()
	}

	if snap.CanDownload {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	if snap.Loading {
		ui.spinner.Show()
	} else {
		ui.spinner.Hide()
	}

	ui.renderStatus(snap)
	ui.renderRecent(snap.Recent)
}

func (ui *DownloaderUI) renderStatus(snap model.Snapshot) {
	if snap.StatusMessage == "" {
		ui.statusLabel.SetText("")
		ui.statusLabel.Hide()
		return
	}
	if snap.Status.IsFailure() {
		ui.statusLabel.Importance = widget.DangerImportance
	} else {
		ui.statusLabel.Importance = widget.SuccessImportance
	}
	ui.statusLabel.SetText(snap.StatusMessage)
	ui.statusLabel.Show()
}

func (ui *DownloaderUI) renderRecent(records []model.DownloadRecord) {
	if len(records) == 0 {
		ui.recentBox.RemoveAll()
		ui.recentCard.Hide()
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(records))
	for _, record := range records {
		label := widget.NewLabel(record.GetDisplayTitle())
		label.Truncation = fyne.TextTruncateEllipsis
		objects = append(objects, label)
	}
	ui.recentBox.Objects = objects
	ui.recentBox.Refresh()
	ui.recentCard.Show()
}

// onDownloadClick handles the download button click
func (ui *DownloaderUI) onDownloadClick() {
	if !ui.downloadSvc.Snapshot().CanDownload {
		return
	}

	go func() {
		err := ui.downloadSvc.Download(context.Background())
		switch {
		case err == nil:
		case errors.Is(err, download.ErrBusy), errors.Is(err, download.ErrInvalidURL):
			log.Printf("Download not started: %v", err)
		default:
			log.Printf("Download error: %v", err)
		}
	}()
}

// onToggleMode handles the display mode button
func (ui *DownloaderUI) onToggleMode() {
	ui.downloadSvc.ToggleDisplayMode()
}

// onShowSettings shows the settings dialog
func (ui *DownloaderUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func(opts config.Options) {
		ui.downloadSvc.SetOptions(opts)
	})
}
