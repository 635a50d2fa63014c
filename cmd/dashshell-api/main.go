package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/dashshell/internal/httpserver"
	"github.com/tinytelemetry/dashshell/internal/mockapi"
	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var addr string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/dashshell/api.yml)")
	flag.StringVar(&addr, "addr", "", "override listen address")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("dashshell-api - Placeholder API\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	if err := runServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runServer serves the placeholder API until SIGINT or SIGTERM.
func runServer(cfg apiConfig) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	router, err := nav.NewRouter(nav.DefaultTree(), model.DefaultSectionID)
	if err != nil {
		return fmt.Errorf("building navigation: %w", err)
	}

	srv := httpserver.NewServer(cfg.Addr, mockapi.New(cfg.fetchConfig()), router)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	cfg.Addr = srv.Addr()
	printStartupBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serveUntilDone(ctx, srv); err != nil {
		log.Printf("server: exited with error: %v", err)
		return err
	}
	return nil
}

// serveUntilDone runs srv's accept loop until ctx ends or serving fails,
// then shuts the server down.
func serveUntilDone(ctx context.Context, srv *httpserver.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	// A serve failure cancels gctx, which triggers the shutdown below.
	g.Go(srv.Serve)

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			fmt.Println("\nShutting down gracefully...")
		}
		return srv.Stop()
	})

	return g.Wait()
}

func printStartupBanner(cfg apiConfig) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")
	separator := dim.Render("    ─────────────────────────────────")

	lines := []string{
		"",
		"    " + cyan.Bold(true).Render("dashshell-api") + " " + dim.Render("v"+version),
		"",
		separator,
		"",
		bold.Render("    Endpoints"),
		"",
		fmt.Sprintf("    %s  Hello          %s", check, cyan.Render("http://"+cfg.Addr+"/hello")),
		fmt.Sprintf("    %s  Health         %s", check, cyan.Render("http://"+cfg.Addr+"/api/health")),
		fmt.Sprintf("    %s  Navigation     %s", check, cyan.Render("http://"+cfg.Addr+"/api/nav")),
		fmt.Sprintf("    %s  Resources      %s", check, cyan.Render("http://"+cfg.Addr+"/api/{dashboard,users,...}")),
		"",
		bold.Render("    Mock latency"),
		"",
		fmt.Sprintf("    %s  Delay          %s", check, dim.Render(cfg.MinDelay.String()+" - "+cfg.MaxDelay.String())),
		fmt.Sprintf("    %s  Failure rate   %s", check, dim.Render(fmt.Sprintf("%.0f%%", cfg.FailureRate*100))),
		"",
	}
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(cfg.ConfigPath)))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}
	lines = append(lines,
		"",
		separator,
		"",
		"    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"),
		"",
	)

	fmt.Println(strings.Join(lines, "\n"))
}
