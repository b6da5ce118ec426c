// Package config resolves runtime configuration for the wordladder
// binaries with the precedence: flags > environment > config file >
// defaults. Environment variables use the WORDLADDER_ prefix with
// dashes mapped to underscores (e.g. WORDLADDER_LOG_LEVEL).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all settings shared by the CLI and the daemon.
type Config struct {
	// Cache is the candidate-cache location (JSON document).
	Cache string `mapstructure:"cache"`

	// Dict is the dictionary file; the daemon requires it, the CLI
	// takes it as a positional argument instead.
	Dict string `mapstructure:"dict"`

	// Listen is the daemon bind address.
	Listen string `mapstructure:"listen"`

	// LogLevel is a zerolog level name (trace..panic).
	LogLevel string `mapstructure:"log-level"`
}

// Load resolves the configuration. configFile may be empty; when given,
// a read failure is an error. flags may be nil; when given, explicitly
// set flags win over every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("wordladder")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every known key; keys must be known here for
// environment-only values to surface during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("cache", "possible_words.json")
	v.SetDefault("dict", "")
	v.SetDefault("listen", ":8080")
	v.SetDefault("log-level", "info")
}
