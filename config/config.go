// Package config loads and saves the TOML configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/toml"
)

// Paths locates the persistent files. Relative paths resolve against the
// working directory
type Paths struct {
	Save      string `toml:"save"`
	HighScore string `toml:"high_score"`
	History   string `toml:"history"`
}

// Config is the full contents of the configuration file
type Config struct {
	Debug bool `toml:"debug"`
	// Seed fixes the placement sequence, zero picks one from the clock
	Seed int64 `toml:"seed"`

	Rules    game.Rules    `toml:"rules"`
	Settings game.Settings `toml:"settings"`
	Paths    Paths         `toml:"paths"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Rules:    game.DefaultRules(),
		Settings: game.DefaultSettings(),
		Paths: Paths{
			Save:      constants.DefaultSavePath,
			HighScore: constants.DefaultHighScorePath,
			History:   constants.DefaultHistoryPath,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults and
// created reports that the caller should write them out
func Load(path string) (cfg Config, created bool, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, true, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), false, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return Default(), false, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Settings = cfg.Settings.Normalize()
	return cfg, false, nil
}

// Save writes cfg to path
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
