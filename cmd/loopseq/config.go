package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// envLogLevel overrides the default log level when no flag or file sets it.
const envLogLevel = "LOOPSEQ_LOG_LEVEL"

// Config is the optional TOML configuration file.
//
//	log_level = "debug"
//
//	[affine]
//	seed = 1
//	mul  = 3
//	add  = 0
//	mod  = 1000
type Config struct {
	LogLevel string       `toml:"log_level"`
	Affine   AffineConfig `toml:"affine"`
}

// AffineConfig holds defaults for the affine command's flags.
type AffineConfig struct {
	Seed  uint64 `toml:"seed"`
	Mul   uint64 `toml:"mul"`
	Add   uint64 `toml:"add"`
	Mod   uint64 `toml:"mod"`
	Limit int    `toml:"limit"`
}

// DefaultConfig is used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: GetEnvOr(envLogLevel, "info"),
		Affine: AffineConfig{
			Seed: 1,
			Mul:  3,
			Add:  0,
			Mod:  1000,
		},
	}
}

// GetEnvOr returns the value of key, or fallback if it is unset or empty.
func GetEnvOr(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}
	return value
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
