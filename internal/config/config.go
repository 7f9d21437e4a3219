// Package config loads and saves the manat configuration file. Only the
// profile scalars are stored; spending and subscription collections live in
// memory and reset on restart.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all manat configuration.
type Config struct {
	Profile    ProfileConfig    `toml:"profile"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ProfileConfig holds the user profile seeds.
type ProfileConfig struct {
	Username  string  `toml:"username"`
	BudgetUSD float64 `toml:"budget_usd"`
	GoalUSD   float64 `toml:"goal_usd,omitempty"`
}

// AppearanceConfig holds presentation preferences.
type AppearanceConfig struct {
	Currency string `toml:"currency"`
	Language string `toml:"language"`
	Theme    string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			Username:  "User",
			BudgetUSD: 5000,
		},
		Appearance: AppearanceConfig{
			Currency: "USD",
			Language: "english",
			Theme:    "dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "manat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "manat")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
