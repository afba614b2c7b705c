package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-grab/internal/model"
)

func TestModeTheme_ForcesVariant(t *testing.T) {
	light := NewModeTheme(model.ModeLight)
	dark := NewModeTheme(model.ModeDark)

	// The variant passed in by the app is ignored
	l := light.Color(theme.ColorNameBackground, theme.VariantDark)
	d := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	if l == d {
		t.Fatal("Light and dark backgrounds should differ")
	}
	if l != light.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("Light theme background should not depend on the requested variant")
	}

	if light.Color(theme.ColorNameForeground, theme.VariantLight) == dark.Color(theme.ColorNameForeground, theme.VariantLight) {
		t.Error("Light and dark foregrounds should differ")
	}
}

func TestModeTheme_Mode(t *testing.T) {
	tests := []struct {
		mode model.DisplayMode
	}{
		{model.ModeLight},
		{model.ModeDark},
	}

	for _, test := range tests {
		mt, ok := NewModeTheme(test.mode).(*ModeTheme)
		if !ok {
			t.Fatal("NewModeTheme should return *ModeTheme")
		}
		if mt.Mode() != test.mode {
			t.Errorf("Mode() = %s, expected %s", mt.Mode(), test.mode)
		}
	}
}
