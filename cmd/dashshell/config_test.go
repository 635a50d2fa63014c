package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig("")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "activate", cfg.ParentSelect)
	assert.Equal(t, 500*time.Millisecond, cfg.MinDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.MaxDelay)
	assert.InDelta(t, 0.10, cfg.FailureRate, 1e-9)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.HelloURL)
	assert.Equal(t, time.Second, cfg.HelloTimeout)
	assert.True(t, cfg.SidebarOpen)
	assert.False(t, cfg.ReverseScrollWheel)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoadCLIConfig_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
theme: dark
parent-select: toggle
min-delay: 10ms
max-delay: 20ms
failure-rate: 0.5
sidebar-open: false
`)

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "toggle", cfg.ParentSelect)
	assert.Equal(t, 10*time.Millisecond, cfg.MinDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.MaxDelay)
	assert.InDelta(t, 0.5, cfg.FailureRate, 1e-9)
	assert.False(t, cfg.SidebarOpen)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadCLIConfig_Env(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DASHSHELL_THEME", "dark")
	t.Setenv("DASHSHELL_FAILURE_RATE", "0")

	cfg, err := loadCLIConfig("")
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Zero(t, cfg.FailureRate)
}

func TestLoadCLIConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"theme":  "theme: purple\n",
		"policy": "parent-select: sometimes\n",
		"delays": "min-delay: 2s\nmax-delay: 1s\n",
		"rate":   "failure-rate: 1.5\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := loadCLIConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
