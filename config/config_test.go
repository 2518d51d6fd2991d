package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tipsypastels/balatro/gameerrors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.JokerSlots != 5 {
		t.Errorf("expected JokerSlots=5, got %d", cfg.JokerSlots)
	}
	if cfg.ConsumableSlots != 2 {
		t.Errorf("expected ConsumableSlots=2, got %d", cfg.ConsumableSlots)
	}
	if cfg.HandSize != 8 {
		t.Errorf("expected HandSize=8, got %d", cfg.HandSize)
	}
	if cfg.Jokers.Jimbo.Mult != 4 {
		t.Errorf("expected Jimbo.Mult=4, got %d", cfg.Jokers.Jimbo.Mult)
	}
	if cfg.Jokers.Misprint.MaxMult != 23 {
		t.Errorf("expected Misprint.MaxMult=23, got %d", cfg.Jokers.Misprint.MaxMult)
	}
	if cfg.Jokers.Stencil.Price != 8 {
		t.Errorf("expected Stencil.Price=8, got %d", cfg.Jokers.Stencil.Price)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
joker_slots: 3
seed: "42"
jokers:
  misprint:
    max_mult: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JokerSlots != 3 {
		t.Errorf("expected JokerSlots=3 from file, got %d", cfg.JokerSlots)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected Seed=42 from quoted value, got %d", cfg.Seed)
	}
	if cfg.Jokers.Misprint.MaxMult != 10 {
		t.Errorf("expected Misprint.MaxMult=10 from file, got %d", cfg.Jokers.Misprint.MaxMult)
	}
	// Siblings in a partially set section keep their defaults.
	if cfg.Jokers.Misprint.Price != 4 {
		t.Errorf("expected Misprint.Price=4 (default), got %d", cfg.Jokers.Misprint.Price)
	}
	if cfg.HandSize != 8 {
		t.Errorf("expected HandSize=8 (default), got %d", cfg.HandSize)
	}
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"hand_size": 7, "jokers": {"joker": {"mult": 6}}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HandSize != 7 {
		t.Errorf("expected HandSize=7, got %d", cfg.HandSize)
	}
	if cfg.Jokers.Jimbo.Mult != 6 {
		t.Errorf("expected Jimbo.Mult=6, got %d", cfg.Jokers.Jimbo.Mult)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "joker_slots: [unterminated")
	_, err := Load(path)
	if !errors.Is(err, gameerrors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	path = writeFile(t, "config.yaml", "joker_slots: lots")
	_, err = Load(path)
	if !errors.Is(err, gameerrors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for non-numeric slots, got %v", err)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "joker_slots: 3\nhand_size: 6\n")
	t.Setenv("JOKER_SLOTS", "7")
	t.Setenv("SEED", "99")
	t.Setenv("JOKER_MULT", "9")
	t.Setenv("MISPRINT_MAX_MULT", "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JokerSlots != 7 {
		t.Errorf("expected JokerSlots=7 after env override, got %d", cfg.JokerSlots)
	}
	if cfg.Seed != 99 {
		t.Errorf("expected Seed=99 after env override, got %d", cfg.Seed)
	}
	if cfg.Jokers.Jimbo.Mult != 9 {
		t.Errorf("expected Jimbo.Mult=9 after env override, got %d", cfg.Jokers.Jimbo.Mult)
	}
	if cfg.Jokers.Misprint.MaxMult != 30 {
		t.Errorf("expected Misprint.MaxMult=30 after env override, got %d", cfg.Jokers.Misprint.MaxMult)
	}
	// File value survives when env does not set it.
	if cfg.HandSize != 6 {
		t.Errorf("expected HandSize=6 from file, got %d", cfg.HandSize)
	}
}

func TestLoadWithInvalidEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JOKER_SLOTS", "invalid")
	t.Setenv("HAND_SIZE", "6")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A bad value discards the env pass as a whole.
	if cfg.JokerSlots != 5 {
		t.Errorf("expected JokerSlots=5 (default) with invalid env, got %d", cfg.JokerSlots)
	}
	if cfg.HandSize != 8 {
		t.Errorf("expected HandSize=8 (default) with invalid env, got %d", cfg.HandSize)
	}
}

func TestLoadFindsDefaultPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"consumable_slots": 4}`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConsumableSlots != 4 {
		t.Errorf("expected ConsumableSlots=4 from config.json, got %d", cfg.ConsumableSlots)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative joker slots", func(c *Config) { c.JokerSlots = -1 }},
		{"zero hand size", func(c *Config) { c.HandSize = 0 }},
		{"misprint range inverted", func(c *Config) { c.Jokers.Misprint.MinMult = 30 }},
		{"negative price", func(c *Config) { c.Jokers.CreditCard.Price = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, gameerrors.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsLoggerLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "Info", "warning", "error", ""} {
		cfg := Defaults()
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected log_level %q to validate, got %v", level, err)
		}
	}
}
