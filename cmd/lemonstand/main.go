// Command lemonstand serves the lemonade stand game over HTTP.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lemonworks/lemonstand/internal/api"
	"github.com/lemonworks/lemonstand/internal/config"
	"github.com/lemonworks/lemonstand/internal/persistence"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log)

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	db, err := persistence.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Database.Path)

	srv := &api.Server{
		DB:   db,
		Addr: cfg.Server.Addr,
	}
	if err := srv.Start(); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
}

func setupLogging(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
