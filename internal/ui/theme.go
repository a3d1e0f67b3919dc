// This file defines the StudioFolio Fyne theme: a warm neutral palette over
// the default theme with roomier sizing for image-led pages.

package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names accepted in AppConfig.Theme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ThemeNames lists the selectable theme names in menu order.
var ThemeNames = []string{ThemeSystem, ThemeLight, ThemeDark}

// StudioTheme wraps the default Fyne theme with palette and sizing
// overrides.
type StudioTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewStudioTheme creates a StudioTheme that follows the system variant.
func NewStudioTheme() *StudioTheme {
	return &StudioTheme{
		base:   theme.DefaultTheme(),
		system: true,
	}
}

// NewStudioThemeNamed creates a StudioTheme from a config theme name.
// Unknown names follow the system variant.
func NewStudioThemeNamed(name string) *StudioTheme {
	t := NewStudioTheme()
	t.SetName(name)
	return t
}

// SetName updates the variant from a config theme name.
func (t *StudioTheme) SetName(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		t.variant, t.system = theme.VariantLight, false
	case ThemeDark:
		t.variant, t.system = theme.VariantDark, false
	default:
		t.system = true
	}
}

// Name returns the config theme name for the current setting.
func (t *StudioTheme) Name() string {
	switch {
	case t.system:
		return ThemeSystem
	case t.variant == theme.VariantDark:
		return ThemeDark
	default:
		return ThemeLight
	}
}

func (t *StudioTheme) resolve(requested fyne.ThemeVariant) fyne.ThemeVariant {
	if t.system {
		return requested
	}
	return t.variant
}

// Color applies the studio palette and delegates the rest to the base theme.
func (t *StudioTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	v := t.resolve(variant)
	dark := v == theme.VariantDark
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 150, G: 122, B: 88, A: 255} // bronze
	case theme.ColorNameBackground:
		if dark {
			return color.NRGBA{R: 24, G: 23, B: 21, A: 255}
		}
		return color.NRGBA{R: 248, G: 246, B: 242, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.NRGBA{R: 235, G: 232, B: 226, A: 255}
		}
		return color.NRGBA{R: 34, G: 32, B: 29, A: 255}
	}
	return t.base.Color(name, v)
}

// Font delegates to the base theme.
func (t *StudioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *StudioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns sizing overrides for headings and padding.
func (t *StudioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameInnerPadding:
		return 9
	default:
		return t.base.Size(name)
	}
}
