package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"termfolio/internal/config"
	"termfolio/internal/content"
	"termfolio/internal/logging"
	"termfolio/internal/telemetry"
	"termfolio/internal/ui"
)

// parseFlags loads the environment config and applies command-line
// overrides on top of it.
func parseFlags(args []string) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("termfolio", flag.ContinueOnError)
	fs.StringVar(&cfg.StartupSource, "startup", cfg.StartupSource, "startup text source: http(s) URL or file path (default: content dir, then built-in)")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with profile.toml and startup.txt overrides")
	fs.DurationVar(&cfg.TypingDelay, "speed", cfg.TypingDelay, "delay between typed characters")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: termfolio [flags]\n\n")
		fmt.Fprintf(os.Stderr, "An interactive portfolio in your terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	tp, err := telemetry.New(ctx, logger)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		tp = telemetry.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	store := content.NewStore(cfg.ContentDir)
	profile, err := store.Profile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	model, err := ui.NewAppModel(ui.Options{
		Profile: profile,
		Loader: &content.Loader{
			Source:  cfg.StartupSource,
			Store:   store,
			Client:  &http.Client{},
			Timeout: cfg.FetchTimeout,
		},
		TypingDelay: cfg.TypingDelay,
		Logger:      logger,
		Telemetry:   tp,
	})
	if err != nil {
		return fmt.Errorf("build commands: %w", err)
	}
	logger.Info("starting",
		"session", model.SessionID(),
		"startup_source", cfg.StartupSource,
		"content_dir", cfg.ContentDir,
		"tracing", tp.Enabled(),
	)

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "termfolio: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "termfolio: %v\n", err)
		os.Exit(1)
	}
}
