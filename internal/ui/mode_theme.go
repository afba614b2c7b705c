package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-grab/internal/model"
)

// ModeTheme renders the default theme in a fixed light or dark variant,
// ignoring the OS preference.
type ModeTheme struct {
	mode model.DisplayMode
}

// NewModeTheme creates a theme for the given display mode
func NewModeTheme(mode model.DisplayMode) fyne.Theme {
	return &ModeTheme{mode: mode}
}

// Mode returns the display mode the theme renders
func (t *ModeTheme) Mode() model.DisplayMode {
	return t.mode
}

func (t *ModeTheme) variant() fyne.ThemeVariant {
	if t.mode.IsDark() {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors for the forced variant
func (t *ModeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.variant()
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 34, G: 197, B: 94, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255} // Red for errors
	case theme.ColorNamePrimary:
		return color.RGBA{R: 37, G: 99, B: 235, A: 255} // Blue for the download button
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 17, G: 24, B: 39, A: 255}
		}
		return color.RGBA{R: 249, G: 250, B: 251, A: 255}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 31, G: 41, B: 55, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 17, G: 24, B: 39, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ModeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ModeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ModeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameHeadingText:
		return 26
	}
	return theme.DefaultTheme().Size(name)
}
