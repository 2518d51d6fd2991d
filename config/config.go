package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/loghandler"
)

// JimboConfig configures the plain "Joker".
type JimboConfig struct {
	Price int    `json:"price" env:"PRICE"`
	Mult  uint64 `json:"mult" env:"MULT"`
}

// MisprintConfig configures Misprint. The mult it adds is drawn from
// [MinMult, MaxMult], both inclusive.
type MisprintConfig struct {
	Price   int    `json:"price" env:"PRICE"`
	MinMult uint64 `json:"min_mult" env:"MIN_MULT"`
	MaxMult uint64 `json:"max_mult" env:"MAX_MULT"`
}

// PriceConfig is for jokers whose only tunable is their shop price.
type PriceConfig struct {
	Price int `json:"price" env:"PRICE"`
}

// JokersConfig holds per-joker configuration sections.
type JokersConfig struct {
	Jimbo      JimboConfig    `json:"joker" envPrefix:"JOKER_"`
	Misprint   MisprintConfig `json:"misprint" envPrefix:"MISPRINT_"`
	Stencil    PriceConfig    `json:"stencil" envPrefix:"STENCIL_"`
	CreditCard PriceConfig    `json:"credit_card" envPrefix:"CREDIT_CARD_"`
}

// Config holds all configurable rules parameters.
type Config struct {
	JokerSlots      int `json:"joker_slots" env:"JOKER_SLOTS"`
	ConsumableSlots int `json:"consumable_slots" env:"CONSUMABLE_SLOTS"`
	HandSize        int `json:"hand_size" env:"HAND_SIZE"`

	// Seed feeds the random source. 0 means draw a fresh seed per run.
	Seed uint64 `json:"seed" env:"SEED"`

	LogLevel string `json:"log_level" env:"LOG_LEVEL"`

	// DatabaseURL enables play telemetry in Postgres when set.
	DatabaseURL    string `json:"database_url" env:"DATABASE_URL"`
	StoreTimeoutMS int    `json:"store_timeout_ms" env:"STORE_TIMEOUT_MS"`

	Jokers JokersConfig `json:"jokers"`
}

// Defaults returns a Config with the stock game values.
func Defaults() *Config {
	return &Config{
		JokerSlots:      5,
		ConsumableSlots: 2,
		HandSize:        8,
		LogLevel:        "info",
		StoreTimeoutMS:  2000,
		Jokers: JokersConfig{
			Jimbo:      JimboConfig{Price: 2, Mult: 4},
			Misprint:   MisprintConfig{Price: 4, MinMult: 0, MaxMult: 23},
			Stencil:    PriceConfig{Price: 8},
			CreditCard: PriceConfig{Price: 1},
		},
	}
}

// DefaultPaths are tried in order when Load is given no path.
var DefaultPaths = []string{"config.yaml", "config.yml", "config.json"}

// Load starts from Defaults, applies the config file at path (or the first
// of DefaultPaths that exists when path is empty), then environment
// overrides. Fields set by neither source keep their defaults.
//
// A missing explicit file or a malformed file is an error. An invalid
// environment value is logged and ignored.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	file := path
	if file == "" {
		for _, p := range DefaultPaths {
			if _, err := os.Stat(p); err == nil {
				file = p
				break
			}
		}
	}
	if file != "" {
		if err := applyFile(cfg, file); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyFile decodes a YAML (or JSON, which YAML accepts) file over cfg.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parse %s: %v", gameerrors.ErrInvalidConfig, path, err)
	}
	if err := decodeMap(cfg, raw, path); err != nil {
		return err
	}
	return nil
}

// decodeMap overlays raw onto cfg. Keys with no matching field are logged.
func decodeMap(cfg *Config, raw map[string]any, source string) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: decode %s: %v", gameerrors.ErrInvalidConfig, source, err)
	}
	for _, key := range md.Unused {
		slog.Warn("unknown config key", "tag", "config", "source", source, "key", key)
	}
	return nil
}

// applyEnv parses overrides into a copy so a bad value leaves cfg intact.
func applyEnv(cfg *Config) {
	next := *cfg
	if err := env.Parse(&next); err != nil {
		slog.Warn("ignoring environment overrides", "tag", "config", "err", err)
		return
	}
	*cfg = next
}

// Validate reports every out-of-range field. Each error wraps
// gameerrors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s %s", gameerrors.ErrInvalidConfig, field, fmt.Sprintf(format, args...)))
		}
	}

	check(c.JokerSlots >= 0, "joker_slots", "must not be negative, got %d", c.JokerSlots)
	check(c.ConsumableSlots >= 0, "consumable_slots", "must not be negative, got %d", c.ConsumableSlots)
	check(c.HandSize > 0, "hand_size", "must be positive, got %d", c.HandSize)
	check(c.StoreTimeoutMS > 0, "store_timeout_ms", "must be positive, got %d", c.StoreTimeoutMS)
	check(c.Jokers.Misprint.MinMult <= c.Jokers.Misprint.MaxMult, "jokers.misprint",
		"min_mult %d exceeds max_mult %d", c.Jokers.Misprint.MinMult, c.Jokers.Misprint.MaxMult)
	prices := []struct {
		field string
		price int
	}{
		{"jokers.joker.price", c.Jokers.Jimbo.Price},
		{"jokers.misprint.price", c.Jokers.Misprint.Price},
		{"jokers.stencil.price", c.Jokers.Stencil.Price},
		{"jokers.credit_card.price", c.Jokers.CreditCard.Price},
	}
	for _, p := range prices {
		check(p.price >= 0, p.field, "must not be negative, got %d", p.price)
	}
	_, err := loghandler.ParseLevel(c.LogLevel)
	check(err == nil, "log_level", "must be debug, info, warn or error, got %q", c.LogLevel)

	return errors.Join(errs...)
}
