package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/snake/game"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, created, err := Load(filepath.Join(t.TempDir(), "snake.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !created {
		t.Error("Expected created flag for missing file")
	}
	if cfg.Rules != game.DefaultRules() || cfg.Settings != game.DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.Paths.Save == "" || cfg.Paths.HighScore == "" || cfg.Paths.History == "" {
		t.Errorf("Expected default paths, got %+v", cfg.Paths)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	body := `debug = true

[rules]
initial_tick_delay = "200ms"
points_per_level = 5

[settings]
growth = 9
self_collision = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, created, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if created {
		t.Error("Existing file reported as created")
	}
	if !cfg.Debug {
		t.Error("Expected debug")
	}
	if cfg.Rules.InitialTickDelay != 200*time.Millisecond || cfg.Rules.PointsPerLevel != 5 {
		t.Errorf("Rules not applied: %+v", cfg.Rules)
	}
	if cfg.Rules.MinTickDelay != game.DefaultRules().MinTickDelay {
		t.Error("Untouched rule lost its default")
	}
	if cfg.Settings.GrowthAmount != 5 {
		t.Errorf("Expected growth clamped to 5, got %d", cfg.Settings.GrowthAmount)
	}
	if cfg.Settings.SelfCollision {
		t.Error("Expected self collision off")
	}
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte("[rules]\nmin_tick_delay = \"0s\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(path)
	if !errors.Is(err, game.ErrInvalidRules) {
		t.Errorf("Expected ErrInvalidRules, got %v", err)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte("[rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg.Rules != game.DefaultRules() {
		t.Error("Expected defaults alongside the error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "snake.toml")
	cfg := Default()
	cfg.Seed = 1234
	cfg.Settings.Volume = 0.3
	cfg.Settings.GrowthAmount = 2
	cfg.Rules.SlowFactor = 1.5
	cfg.Paths.History = "data/rounds.db"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[settings]\ngrowth = 2\n") {
		t.Errorf("Unexpected file layout:\n%s", data)
	}

	got, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, cfg)
	}
}
