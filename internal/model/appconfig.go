package model

import (
	"errors"
	"fmt"
	"strings"
)

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	Theme  string        `json:"theme" mapstructure:"theme"` // "light", "dark", "system"
	Window WindowConfig  `json:"window" mapstructure:"window"`
	Style  ButtonStyle   `json:"style" mapstructure:"style"`
	Log    LogConfig     `json:"log" mapstructure:"log"`
	Groups []GroupConfig `json:"groups" mapstructure:"groups"`

	// Label of the stand-alone toggle that belongs to no group; empty hides it.
	UngroupedLabel string `json:"ungrouped_label" mapstructure:"ungrouped_label"`
}

// WindowConfig controls the initial main window geometry.
type WindowConfig struct {
	Width  float32 `json:"width" mapstructure:"width"`
	Height float32 `json:"height" mapstructure:"height"`
	Center bool    `json:"center" mapstructure:"center"`
}

// LogConfig selects level, encoding and destination of the application log.
type LogConfig struct {
	Level        string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format       string `json:"format" mapstructure:"format"` // json, console
	Output       string `json:"output" mapstructure:"output"` // stdout, stderr, file
	EnableColors bool   `json:"enable_colors" mapstructure:"enable_colors"`
	FilePath     string `json:"file_path" mapstructure:"file_path"`
	MaxSize      int    `json:"max_size" mapstructure:"max_size"` // megabytes
	MaxBackups   int    `json:"max_backups" mapstructure:"max_backups"`
	MaxAge       int    `json:"max_age" mapstructure:"max_age"` // days
	Compress     bool   `json:"compress" mapstructure:"compress"`
}

// GroupConfig describes one group of one-hot buttons shown in the UI.
type GroupConfig struct {
	Name    string   `json:"name" mapstructure:"name"`
	Title   string   `json:"title" mapstructure:"title"`
	Options []string `json:"options" mapstructure:"options"`
	// Initially checked option; empty leaves the whole group unchecked.
	Selected string `json:"selected" mapstructure:"selected"`
}

// DisplayTitle returns Title, or Name when no title is set.
func (g GroupConfig) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.Name
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme: "system",
		Window: WindowConfig{
			Width:  540,
			Height: 960,
			Center: true,
		},
		Style: DefaultButtonStyle(),
		Log: LogConfig{
			Level:        "info",
			Format:       "console",
			Output:       "stderr",
			EnableColors: true,
			MaxSize:      10,
			MaxBackups:   3,
			MaxAge:       28,
		},
		Groups: []GroupConfig{
			{Name: "diet", Title: "Diet", Options: []string{"Vegan", "Vegetarian", "Pescatarian", "Omnivore"}},
			{Name: "size", Title: "Portion", Options: []string{"Small", "Medium", "Large"}, Selected: "Medium"},
		},
		UngroupedLabel: "Extra napkins",
	}
}

var validThemes = map[string]bool{"light": true, "dark": true, "system": true}

// Validate reports the first problem found in the configuration.
func (c AppConfig) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if _, err := c.Style.Palette(); err != nil {
		return err
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		return errors.New("log.file_path is required when log.output is \"file\"")
	}

	seen := make(map[string]bool, len(c.Groups))
	for i, g := range c.Groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return fmt.Errorf("groups[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("groups[%d]: duplicate group %q", i, name)
		}
		seen[name] = true
		if len(g.Options) == 0 {
			return fmt.Errorf("group %q has no options", name)
		}
		options := make(map[string]bool, len(g.Options))
		for _, opt := range g.Options {
			if options[opt] {
				return fmt.Errorf("group %q: duplicate option %q", name, opt)
			}
			options[opt] = true
		}
		if g.Selected != "" && !contains(g.Options, g.Selected) {
			return fmt.Errorf("group %q: selected option %q is not one of its options", name, g.Selected)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
