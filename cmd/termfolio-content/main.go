package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"termfolio/internal/config"
	"termfolio/internal/content"
	"termfolio/internal/contentserver"
	"termfolio/internal/logging"
)

func run(cfg config.Config) error {
	logger, closer, err := logging.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := content.NewStore(cfg.ContentDir)
	if _, err := store.Profile(); err != nil {
		return fmt.Errorf("profile in %q: %w", store.BaseDir(), err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := contentserver.NewRouter(store, logger)
	logger.Info("serving content", "addr", cfg.Addr, "content_dir", store.BaseDir())
	return r.Run(cfg.Addr)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termfolio-content: %v\n", err)
		os.Exit(2)
	}
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with profile.toml and startup.txt overrides")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "termfolio-content: %v\n", err)
		os.Exit(1)
	}
}
