package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-grab/internal/model"
)

const (
	invalidURLHint = "✗ " + model.InvalidURLHint
	buttonText     = "[ " + model.DownloadButtonText + " ]"
	helpText       = "enter download • ctrl+t toggle mode • esc quit"
)

// palette holds the styles of one display mode
type palette struct {
	page     lipgloss.Style
	title    lipgloss.Style
	input    lipgloss.Style
	inputOK  lipgloss.Style
	hint     lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	card     lipgloss.Style
	item     lipgloss.Style
	muted    lipgloss.Style
}

var (
	youtubeRed = lipgloss.Color("#dc2626")
	green      = lipgloss.Color("#22c55e")
	red        = lipgloss.Color("#ef4444")
	blue       = lipgloss.Color("#2563eb")
	gray       = lipgloss.Color("#9ca3af")

	lightPalette = palette{
		page:     lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#f9fafb")).Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(youtubeRed),
		input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#d1d5db")).Padding(0, 1),
		inputOK:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green).Padding(0, 1),
		hint:     lipgloss.NewStyle().Foreground(red),
		button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(blue).Padding(0, 1),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(gray).Padding(0, 1),
		success:  lipgloss.NewStyle().Bold(true).Foreground(green),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(red),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#e5e7eb")).Padding(0, 1),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Italic(true),
	}

	darkPalette = palette{
		page:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#111827")).Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(youtubeRed),
		input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4b5563")).Padding(0, 1),
		inputOK:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green).Padding(0, 1),
		hint:     lipgloss.NewStyle().Foreground(red),
		button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(blue).Padding(0, 1),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")).Background(lipgloss.Color("#4b5563")).Padding(0, 1),
		success:  lipgloss.NewStyle().Bold(true).Foreground(green),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(red),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#374151")).Background(lipgloss.Color("#1f2937")).Padding(0, 1),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f3f4f6")),
		muted:    lipgloss.NewStyle().Foreground(gray).Italic(true),
	}
)

func paletteFor(mode model.DisplayMode) palette {
	if mode.IsDark() {
		return darkPalette
	}
	return lightPalette
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := paletteFor(m.snap.Mode)
	var b strings.Builder

	b.WriteString(p.title.Render("▶ "+model.AppTitle) + "  " + p.muted.Render(model.ModeIcon(m.snap.Mode)))
	b.WriteString("\n\n")

	inputStyle := p.input
	if m.snap.Valid {
		inputStyle = p.inputOK
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.snap.ShowInvalidHint {
		b.WriteString(p.hint.Render(invalidURLHint))
	}
	b.WriteString("\n\n")

	switch {
	case m.snap.Loading:
		b.WriteString(p.disabled.Render(m.spinner.View() + " Processing"))
	case m.snap.CanDownload:
		b.WriteString(p.button.Render(buttonText))
	default:
		b.WriteString(p.disabled.Render(buttonText))
	}
	b.WriteString("\n")

	if m.snap.StatusMessage != "" {
		b.WriteString("\n")
		if m.snap.Status.IsFailure() {
			b.WriteString(p.failure.Render(m.snap.StatusMessage))
		} else {
			b.WriteString(p.success.Render(m.snap.StatusMessage))
		}
		b.WriteString("\n")
	}

	if len(m.snap.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(p.card.Render(renderRecent(p, m.snap.Recent)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.muted.Render(helpText))

	page := p.page
	if m.width > 0 {
		page = page.Width(m.width)
	}
	return page.Render(b.String())
}

func renderRecent(p palette, records []model.DownloadRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(model.RecentTitle))
	for _, r := range records {
		lines = append(lines, p.item.Render(r.GetDisplayTitle())+"  "+p.muted.Render(humanize.Time(r.CompletedAt)))
	}
	return strings.Join(lines, "\n")
}
