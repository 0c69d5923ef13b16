// Package config loads CLI defaults through viper, so flags, a config
// file, and environment variables layer together the way the rest of the
// pack's CLI tools do it.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the mining CLI's configurable defaults. Command-line flags
// always take precedence; these are the values used when a flag is left
// at its zero value.
type Config struct {
	Mining MiningConfig `mapstructure:"mining"`
	Log    LogConfig    `mapstructure:"log"`
}

// MiningConfig holds the default engine parameters.
type MiningConfig struct {
	Algo  string  `mapstructure:"algo"`  // v1, v2, twohop, naive
	K     int32   `mapstructure:"k"`     // kplex / kdef slack
	Alpha float64 `mapstructure:"alpha"` // quasi / pseudo density
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath (or the standard search path
// if empty), falling back to defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cliquemine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/cliquemine")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file, defaults stand
		} else if os.IsNotExist(err) {
			// explicit path missing, defaults stand
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CLIQUEMINE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from in-memory content, for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mining.algo", "v2")
	v.SetDefault("mining.k", 1)
	v.SetDefault("mining.alpha", 0.5)
	v.SetDefault("log.level", "info")
}

// Validate checks that the loaded configuration's defaults are usable.
func (c *Config) Validate() error {
	switch c.Mining.Algo {
	case "v1", "v2", "twohop", "naive":
	default:
		return fmt.Errorf("unsupported default algo: %s", c.Mining.Algo)
	}
	if c.Mining.Alpha <= 0 || c.Mining.Alpha >= 1 {
		return fmt.Errorf("default alpha must be in (0, 1), got %f", c.Mining.Alpha)
	}
	return nil
}
