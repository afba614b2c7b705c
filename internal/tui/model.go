package tui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/yt-grab/internal/download"
	"github.com/ytget/yt-grab/internal/model"
)

// RefreshMsg tells the model to re-read the service state. Send it from the
// service update callback.
type RefreshMsg struct{}

type downloadDoneMsg struct {
	err error
}

// Model is the terminal rendering of the downloader widget.
type Model struct {
	svc      download.Downloader
	input    textinput.Model
	spinner  spinner.Model
	snap     model.Snapshot
	lastID   string
	width    int
	quitting bool
}

// New returns a Model bound to svc
func New(svc download.Downloader) Model {
	input := textinput.New()
	input.Placeholder = model.URLPlaceholder
	input.Focus()
	input.CharLimit = 200
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		svc:     svc,
		input:   input,
		spinner: spin,
	}
	m.applySnapshot(svc.Snapshot())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RefreshMsg:
		m.applySnapshot(m.svc.Snapshot())
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, download.ErrBusy) {
			log.Printf("Download error: %v", msg.err)
		}
		m.applySnapshot(m.svc.Snapshot())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlT:
		m.svc.ToggleDisplayMode()
		m.applySnapshot(m.svc.Snapshot())
		return m, nil

	case tea.KeyEnter:
		if !m.snap.CanDownload {
			return m, nil
		}
		svc := m.svc
		return m, func() tea.Msg {
			return downloadDoneMsg{err: svc.Download(context.Background())}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.svc.SetURL(m.input.Value())
	m.applySnapshot(m.svc.Snapshot())
	return m, cmd
}

// applySnapshot stores snap and clears the input once a new download has
// been recorded.
func (m *Model) applySnapshot(snap model.Snapshot) {
	if n := len(snap.Recent); n > 0 && snap.Recent[n-1].ID != m.lastID {
		m.lastID = snap.Recent[n-1].ID
		m.input.SetValue(snap.URL)
	}
	m.snap = snap
}

// Snapshot returns the state the model last rendered from
func (m Model) Snapshot() model.Snapshot {
	return m.snap
}
