package main

import (
	"log/slog"
	"os"

	_ "taskflow/docs"
	"taskflow/internal/config"
	"taskflow/internal/server"
)

// @title           Taskflow API
// @version         1.0
// @description     Projects, tasks and the Gantt timeline that schedules them.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Users
// @tag.name Projects
// @tag.name Tasks
// @tag.name Timeline
// @tag.name Dashboard
// @tag.name Notifications
// @tag.name Snapshot

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Invalid configuration", "error", err)
		os.Exit(1)
	}
	log := mustMakeLogger(cfg.LogLevel)

	s, err := server.Init(cfg, log)
	if err != nil {
		log.Error("❌ Server initialization failed", "error", err)
		os.Exit(1)
	}

	s.Run()
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
