package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/dashshell/internal/mockapi"
	"github.com/tinytelemetry/dashshell/internal/model"
)

// apiConfig is the placeholder API server configuration.
type apiConfig struct {
	Addr        string        `mapstructure:"addr"`
	MinDelay    time.Duration `mapstructure:"min-delay"`
	MaxDelay    time.Duration `mapstructure:"max-delay"`
	FailureRate float64       `mapstructure:"failure-rate"`
	ConfigPath  string        `mapstructure:"-"`
}

func (c apiConfig) fetchConfig() mockapi.Config {
	return mockapi.Config{MinDelay: c.MinDelay, MaxDelay: c.MaxDelay, FailureRate: c.FailureRate}
}

func loadConfig(configPath string) (apiConfig, error) {
	var cfg apiConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DASHSHELL_API")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("addr", model.DefaultAPIAddr)
	v.SetDefault("min-delay", model.DefaultMinDelay)
	v.SetDefault("max-delay", model.DefaultMaxDelay)
	v.SetDefault("failure-rate", model.DefaultFailureRate)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "dashshell", "api.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		cfg.ConfigPath = v.ConfigFileUsed()
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return cfg, errors.New("addr must not be empty")
	}
	if err := cfg.fetchConfig().Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
