package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/piwi3910/OneHot/internal/model"
)

// EnvPrefix is prepended to environment overrides, e.g. ONEHOT_THEME=dark
// or ONEHOT_LOG_LEVEL=debug.
const EnvPrefix = "ONEHOT"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.onehot/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".onehot")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path and applies
// environment overrides on top. If the file does not exist, the defaults
// (plus overrides) are returned with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return model.AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return model.AppConfig{}, err
	}

	// Scalars come from viper defaults; decoding into a zero value keeps
	// mapstructure from merging file slices into the default slices.
	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	// A missing or null groups entry keeps the defaults rather than an empty UI.
	if config.Groups == nil {
		config.Groups = model.DefaultAppConfig().Groups
	}
	return config, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := model.DefaultAppConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("ungrouped_label", d.UngroupedLabel)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.center", d.Window.Center)
	v.SetDefault("style.selected_text", d.Style.SelectedText)
	v.SetDefault("style.selected_background", d.Style.SelectedBackground)
	v.SetDefault("style.unselected_text", d.Style.UnselectedText)
	v.SetDefault("style.unselected_background", d.Style.UnselectedBackground)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.enable_colors", d.Log.EnableColors)
	v.SetDefault("log.file_path", d.Log.FilePath)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	return v
}
