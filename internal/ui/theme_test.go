package ui

import (
	"testing"

	"github.com/coderefine/coderefine/internal/ui/modals"
)

func TestThemeNames_AllBuiltin(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Errorf("ThemeNames has %d entries, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	for _, name := range names {
		if !IsThemeName(string(name)) {
			t.Errorf("%q is listed but not builtin", name)
		}
	}
}

func TestThemes_Complete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		for field, value := range map[string]string{
			"Primary": theme.Primary, "Bg": theme.Bg, "Text": theme.Text,
			"Success": theme.Success, "Error": theme.Error, "Info": theme.Info,
			"DiffAdded": theme.DiffAdded, "DiffRemoved": theme.DiffRemoved,
		} {
			if value == "" {
				t.Errorf("theme %s has empty %s", name, field)
			}
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("light")
	if CurrentThemeName() != ThemeLight {
		t.Errorf("CurrentThemeName() = %q", CurrentThemeName())
	}
	if !CurrentTheme().Light {
		t.Error("light theme should be marked light")
	}
	if CurrentTheme().CodeStyle() == BuiltinThemes[ThemeDarkPurple].CodeStyle() {
		t.Error("light theme should pick a different code style")
	}
	if modals.ColorPrimary != ColorPrimary {
		t.Error("theme change should be pushed to the modals package")
	}

	SetThemeByName("no-such-theme")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to default, got %q", CurrentThemeName())
	}
}

func TestStylesInitialized(t *testing.T) {
	if ColorPrimary == nil || ToastStyles == nil {
		t.Fatal("styles should be generated at package init")
	}
	if modals.ModalWidth != ModalWidth {
		t.Errorf("modals.ModalWidth = %d, want %d", modals.ModalWidth, ModalWidth)
	}
}
