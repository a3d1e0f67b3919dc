package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestStudioThemeNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"light", ThemeLight},
		{" Dark ", ThemeDark},
		{"system", ThemeSystem},
		{"", ThemeSystem},
		{"sepia", ThemeSystem},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewStudioThemeNamed(tt.in).Name())
		})
	}
}

func TestStudioThemeForcedVariant(t *testing.T) {
	dark := NewStudioThemeNamed(ThemeDark)
	light := NewStudioThemeNamed(ThemeLight)

	// A forced variant ignores what the driver asks for.
	assert.Equal(t,
		dark.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.NotEqual(t,
		dark.Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantLight))

	system := NewStudioTheme()
	assert.Equal(t,
		dark.Color(theme.ColorNameForeground, theme.VariantDark),
		system.Color(theme.ColorNameForeground, theme.VariantDark))
}

func TestStudioThemeSizes(t *testing.T) {
	th := NewStudioTheme()
	assert.Equal(t, float32(28), th.Size(theme.SizeNameHeadingText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}
