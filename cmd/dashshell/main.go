package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/helloapi"
	"github.com/tinytelemetry/dashshell/internal/mockapi"
	"github.com/tinytelemetry/dashshell/internal/nav"
	"github.com/tinytelemetry/dashshell/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var theme string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/dashshell/config.yml)")
	flag.StringVar(&theme, "theme", "", "override the starting theme (light or dark)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("dashshell - Dashboard Shell\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if theme != "" {
		if theme != "light" && theme != "dark" {
			fmt.Fprintf(os.Stderr, "Error: invalid -theme %q: want light or dark\n", theme)
			os.Exit(1)
		}
		cfg.Theme = theme
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	configDir := os.Getenv("HOME") + "/.config/dashshell"
	themes, err := tui.LoadThemes(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load themes from %s: %v (using defaults)\n", configDir, err)
	}

	policy, err := nav.ParsePolicy(cfg.ParentSelect)
	if err != nil {
		return err
	}

	shell := tui.NewShellModel(tui.Options{
		Policy:             policy,
		Fetcher:            mockapi.New(cfg.fetchConfig()),
		Hello:              helloapi.New(cfg.HelloURL, cfg.HelloTimeout),
		Themes:             themes,
		Theme:              cfg.Theme,
		SidebarOpen:        cfg.SidebarOpen,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	app := tui.NewApp(tui.NewShellPage(shell), tui.NewProfilePage(shell.Theme))
	root := tui.NewBoundary(app, shell.Theme)

	log.Printf("dashshell %s starting (config %q, theme %s, parent-select %s)", version, cfg.ConfigPath, cfg.Theme, policy)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureRuntimeLogger sends the log package to a file so log lines do not
// corrupt the alternate screen.
func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "dashshell")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logPath := filepath.Join(logDir, "dashshell.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
