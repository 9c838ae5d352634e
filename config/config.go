package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"machikoro/agent"
	"machikoro/meta"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config describes one simulation batch.
type Config struct {
	Games      int      `yaml:"games"`
	Players    int      `yaml:"players"`
	Workers    int      `yaml:"workers"`
	Seed       uint64   `yaml:"seed"` // 0 draws a master seed from entropy
	Strategies []string `yaml:"strategies"`
	OutDir     string   `yaml:"out_dir"`
	LogLevel   string   `yaml:"log_level"`
	MaxTurns   int      `yaml:"max_turns"`
}

func Default() Config {
	return Config{
		Games:      1000,
		Players:    4,
		Workers:    8,
		Strategies: []string{"random"},
		OutDir:     "simulations",
		LogLevel:   "info",
		MaxTurns:   meta.MAX_TURNS,
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

// Apply decodes key=value overrides onto c. Values are weakly typed, and
// lists are comma separated: "strategies=random,greedy".
func (c *Config) Apply(overrides []string) error {
	values := make(map[string]interface{}, len(overrides))
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok || key == "" {
			return fmt.Errorf("override %q is not key=value", o)
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	// mapstructure writes over an existing slice in place
	if _, ok := values["strategies"]; ok {
		c.Strategies = nil
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           c,
		TagName:          "yaml",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to apply overrides: %w", err)
	}
	if len(md.Unused) > 0 {
		return fmt.Errorf("unknown config keys: %s", strings.Join(md.Unused, ", "))
	}
	return nil
}

// Validate reports every bad field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Players < meta.MIN_PLAYERS || c.Players > meta.MAX_PLAYERS {
		errs = append(errs, fmt.Errorf("players must be %d-%d, got %d", meta.MIN_PLAYERS, meta.MAX_PLAYERS, c.Players))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if n := len(c.Strategies); n != 1 && n != c.Players {
		errs = append(errs, fmt.Errorf("need 1 or %d strategies, got %d", c.Players, n))
	}
	for _, name := range c.Strategies {
		if !agent.IsRegistered(name) {
			errs = append(errs, fmt.Errorf("unknown strategy %q", name))
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StrategyFor returns the strategy name seated at seat. A single name
// fills every seat.
func (c Config) StrategyFor(seat int) string {
	if len(c.Strategies) == 1 {
		return c.Strategies[0]
	}
	return c.Strategies[seat]
}

// Level is the configured log level, info when unparsable.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
