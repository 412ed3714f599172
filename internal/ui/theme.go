// Package ui provides the OneHot application UI components.
//
// This file defines the touch-friendly Fyne theme used by the demo window.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OneHotTheme wraps the default Fyne theme with slightly larger sizing and
// an optional fixed light/dark variant.
type OneHotTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewOneHotTheme creates a theme that follows the system variant.
func NewOneHotTheme() *OneHotTheme {
	return &OneHotTheme{base: theme.DefaultTheme()}
}

// NewOneHotThemeWithVariant creates a theme pinned to a light/dark variant.
func NewOneHotThemeWithVariant(variant fyne.ThemeVariant) *OneHotTheme {
	return &OneHotTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

// ThemeFor maps a config theme name ("light", "dark", "system") to a theme.
// Unknown names follow the system.
func ThemeFor(name string) *OneHotTheme {
	switch name {
	case "light":
		return NewOneHotThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewOneHotThemeWithVariant(theme.VariantDark)
	default:
		return NewOneHotTheme()
	}
}

// Color delegates to the base theme, using the pinned variant if any.
func (t *OneHotTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *OneHotTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *OneHotTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns slightly larger touch-friendly sizing for the toggle list.
func (t *OneHotTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameInnerPadding:
		return 12
	case theme.SizeNameInputRadius:
		return 6
	default:
		return t.base.Size(name)
	}
}
