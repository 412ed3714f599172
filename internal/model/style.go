package model

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the four colors a one-hot button switches between.
type Palette struct {
	SelectedText         color.Color
	SelectedBackground   color.Color
	UnselectedText       color.Color
	UnselectedBackground color.Color
}

// Default button colors: light text on an accent when checked, dark text on
// light when unchecked.
var (
	ColorWhite          = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBlack          = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorCornflowerBlue = color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}
)

// DefaultPalette returns the built-in button colors.
func DefaultPalette() Palette {
	return Palette{
		SelectedText:         ColorWhite,
		SelectedBackground:   ColorCornflowerBlue,
		UnselectedText:       ColorBlack,
		UnselectedBackground: ColorWhite,
	}
}

// Pick returns the text and background color for the given checked state.
func (p Palette) Pick(checked bool) (text, background color.Color) {
	if checked {
		return p.SelectedText, p.SelectedBackground
	}
	return p.UnselectedText, p.UnselectedBackground
}

// ButtonStyle is the serialized form of a Palette, using "#rrggbb" strings.
type ButtonStyle struct {
	SelectedText         string `json:"selected_text" mapstructure:"selected_text"`
	SelectedBackground   string `json:"selected_background" mapstructure:"selected_background"`
	UnselectedText       string `json:"unselected_text" mapstructure:"unselected_text"`
	UnselectedBackground string `json:"unselected_background" mapstructure:"unselected_background"`
}

// DefaultButtonStyle returns DefaultPalette in hex form.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		SelectedText:         "#ffffff",
		SelectedBackground:   "#6495ed",
		UnselectedText:       "#000000",
		UnselectedBackground: "#ffffff",
	}
}

// Palette parses the hex strings. Empty entries fall back to DefaultPalette.
func (s ButtonStyle) Palette() (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"selected_text", s.SelectedText, &p.SelectedText},
		{"selected_background", s.SelectedBackground, &p.SelectedBackground},
		{"unselected_text", s.UnselectedText, &p.UnselectedText},
		{"unselected_background", s.UnselectedBackground, &p.UnselectedBackground},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("style %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseHexColor converts "#rrggbb" (or "#rgb") into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// HexColor formats c as "#rrggbb", ignoring alpha.
func HexColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
