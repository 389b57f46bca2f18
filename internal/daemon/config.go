// Package daemon manages the Ritual engine lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all engine configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig controls where and how progress is persisted.
type StorageConfig struct {
	// Backend is "json" (atomic-replace file) or "sqlite".
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
}

// APIConfig controls the local HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	home := ritualHome()
	return Config{
		Storage: StorageConfig{
			Backend: "json",
			Dir:     filepath.Join(home, "data"),
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 7425,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(home, "ritual.log"),
		},
	}
}

// LoadConfig reads config from ~/.ritual/config.toml, falling back to
// defaults when the file is absent.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(ritualHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.ritual/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(ritualHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// ritualHome returns the Ritual data directory.
func ritualHome() string {
	if env := os.Getenv("RITUAL_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ritual")
}

// RitualHome is exported for use by other packages.
func RitualHome() string {
	return ritualHome()
}
