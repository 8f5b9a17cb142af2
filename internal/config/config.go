// Package config loads the back-end settings.
//
// Settings come from an optional YAML or JSON file and from name=value
// overrides given on the command line. Both go through the same
// mapstructure decoder, so "true" and true, or "2s" and a duration, are
// accepted alike.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of the back-end.
type Config struct {
	MinVersion    string          `mapstructure:"min-version"`
	Model         string          `mapstructure:"model"`
	Oversize      string          `mapstructure:"oversize"`
	Toggles       map[string]bool `mapstructure:"toggles"`
	TraceFile     string          `mapstructure:"trace-file"`
	StatsInterval time.Duration   `mapstructure:"stats-interval"`
	Httpd         string          `mapstructure:"httpd"`
	Redis         Redis           `mapstructure:"redis"`
	LogLevel      string          `mapstructure:"log-level"`
}

// Redis configures the pub/sub event sink. An empty address disables it.
type Redis struct {
	Address string `mapstructure:"address"`
	Channel string `mapstructure:"channel"`
	// History is the number of recent event lines kept in Redis.
	History int    `mapstructure:"history"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Model:         "3279-4",
		Toggles:       map[string]bool{},
		StatsInterval: 2 * time.Second,
		Redis:         Redis{Channel: "b3270:events"},
		LogLevel:      "warn",
	}
}

// Load reads path on top of the defaults. An empty path returns the
// defaults. Files ending in .json are read as JSON, anything else as YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Set applies a single name=value override. Nested settings use dots, as
// in toggles.monoCase=true or redis.channel=ui.
func (c *Config) Set(assignment string) error {
	name, value, ok := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("invalid setting %q: expected name=value", assignment)
	}

	parts := strings.Split(name, ".")
	var raw any = value
	for i := len(parts) - 1; i >= 0; i-- {
		raw = map[string]any{parts[i]: raw}
	}
	if err := decode(raw.(map[string]any), c); err != nil {
		return fmt.Errorf("invalid setting %q: %w", name, err)
	}
	return nil
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
