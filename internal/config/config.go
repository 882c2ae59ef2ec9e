// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects and configures the snapshot store
type StorageConfig struct {
	Type     string `yaml:"type"`
	RedisURL string `yaml:"redis_url"`
}

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	// PINHash is the bcrypt hash of the organizer PIN; empty disables
	// the terminate/export gate
	PINHash string `yaml:"pin_hash"`
	// CooldownSeconds guards courts against double-clear; 0 = default
	CooldownSeconds int `yaml:"cooldown_seconds"`
	// SaveDebounceSeconds batches snapshot saves after changes
	SaveDebounceSeconds int `yaml:"save_debounce_seconds"`
}

// Default returns the baseline configuration
func Default() *Config {
	return &Config{
		Server:              ServerConfig{Port: 8080},
		Storage:             StorageConfig{Type: "memory"},
		SaveDebounceSeconds: 2,
	}
}

// Load reads configuration from the given YAML file (missing file is
// fine) and applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file; defaults plus env apply
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Storage.RedisURL = v
	}
	if v := os.Getenv("PIN_HASH"); v != "" {
		c.PINHash = v
	}
}
