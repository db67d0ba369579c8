// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional YAML config file, then CLUBDUES_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Club struct {
		DataFile string `mapstructure:"data_file" yaml:"data_file"`
	} `mapstructure:"club" yaml:"club"`

	Matching struct {
		// MaxDistance bounds the fuzzy matcher tier. Raising it above 1
		// trades typo tolerance for misattribution risk.
		MaxDistance int `mapstructure:"max_distance" yaml:"max_distance"`
	} `mapstructure:"matching" yaml:"matching"`

	Report struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig loads configuration with hierarchical precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.clubdues")
	v.AddConfigPath(".clubdues")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CLUBDUES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not kill the run; defaults and
			// env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("club.data_file", "club.yaml")

	v.SetDefault("matching.max_distance", 1)

	v.SetDefault("report.delimiter", ",")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Log.Format)
	}

	if config.Matching.MaxDistance < 1 {
		return fmt.Errorf("matching.max_distance must be at least 1, got %d", config.Matching.MaxDistance)
	}

	if len(config.Report.Delimiter) != 1 {
		return fmt.Errorf("report.delimiter must be a single character, got %q", config.Report.Delimiter)
	}

	return nil
}

// DelimiterRune returns the report delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	if len(c.Report.Delimiter) == 0 {
		return ','
	}
	return []rune(c.Report.Delimiter)[0]
}
