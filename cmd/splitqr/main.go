package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	// Load environment variables before logging so SPLITQR_LOG from a
	// .env file takes effect
	envErr := godotenv.Load()

	setupLogging()
	if envErr != nil {
		slog.Debug("no .env file found, using process environment")
	}

	Execute()
}

// setupLogging configures colored structured logging at the level given
// by SPLITQR_LOG (default: info)
func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelFromEnv(),
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("SPLITQR_LOG")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
