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
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// cliConfig holds the TUI configuration.
type cliConfig struct {
	Theme              string        `mapstructure:"theme"`
	ParentSelect       string        `mapstructure:"parent-select"`
	MinDelay           time.Duration `mapstructure:"min-delay"`
	MaxDelay           time.Duration `mapstructure:"max-delay"`
	FailureRate        float64       `mapstructure:"failure-rate"`
	HelloURL           string        `mapstructure:"hello-url"`
	HelloTimeout       time.Duration `mapstructure:"hello-timeout"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	SidebarOpen        bool          `mapstructure:"sidebar-open"`
	ConfigPath         string        `mapstructure:"-"`
}

func (c cliConfig) fetchConfig() mockapi.Config {
	return mockapi.Config{MinDelay: c.MinDelay, MaxDelay: c.MaxDelay, FailureRate: c.FailureRate}
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DASHSHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("theme", model.DefaultTheme)
	v.SetDefault("parent-select", model.DefaultParentSelect)
	v.SetDefault("min-delay", model.DefaultMinDelay)
	v.SetDefault("max-delay", model.DefaultMaxDelay)
	v.SetDefault("failure-rate", model.DefaultFailureRate)
	v.SetDefault("hello-url", model.DefaultHelloURL)
	v.SetDefault("hello-timeout", model.DefaultHelloTimeout)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("sidebar-open", true)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "dashshell", "config.yml"))
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

	if cfg.Theme != "light" && cfg.Theme != "dark" {
		return cfg, fmt.Errorf("invalid theme %q: want light or dark", cfg.Theme)
	}
	if _, err := nav.ParsePolicy(cfg.ParentSelect); err != nil {
		return cfg, err
	}
	if err := cfg.fetchConfig().Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
