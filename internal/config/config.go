package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/wesen/studio/internal/apperr"
)

// Config holds studio configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
	Serve   ServeConfig   `toml:"serve"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	Color         bool `toml:"color"`
	GridSpacingX  int  `toml:"grid_spacing_x"`
	GridSpacingY  int  `toml:"grid_spacing_y"`
	DoubleClickMS int  `toml:"double_click_ms"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level       string `toml:"level"` // "debug", "info", "warn", "error"
	File        string `toml:"file"`  // empty: TUI logs are discarded, serve logs go to stderr
	Development bool   `toml:"development"`
}

// HistoryConfig controls the undo stack.
type HistoryConfig struct {
	Limit int `toml:"limit"` // 0 keeps every entry
}

// ServeConfig controls the HTTP shell.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI:      UIConfig{Color: true, GridSpacingX: 6, GridSpacingY: 3, DoubleClickMS: 400},
		Log:     LogConfig{Level: "info"},
		History: HistoryConfig{Limit: 0},
		Serve:   ServeConfig{Addr: "127.0.0.1:8088"},
	}
}

// Dir returns the studio config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "studio")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path (Path() when empty). A missing file
// yields the defaults; a malformed one is a validation error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperr.Wrap(err, "reading config")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.NewValidation("parsing %s: %v", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config to path (Path() when empty).
func Save(cfg *Config, path string) (err error) {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.Wrap(err, "creating config directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return apperr.Wrap(err, "writing config")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperr.Wrap(cerr, "closing config")
		}
	}()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return apperr.Wrap(err, "writing config")
	}
	return nil
}

// normalize replaces nonsensical values with defaults.
func (c *Config) normalize() {
	d := Default()
	if c.UI.GridSpacingX <= 0 {
		c.UI.GridSpacingX = d.UI.GridSpacingX
	}
	if c.UI.GridSpacingY <= 0 {
		c.UI.GridSpacingY = d.UI.GridSpacingY
	}
	if c.UI.DoubleClickMS <= 0 {
		c.UI.DoubleClickMS = d.UI.DoubleClickMS
	}
	if c.History.Limit < 0 {
		c.History.Limit = 0
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = d.Serve.Addr
	}
}
