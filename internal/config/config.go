package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Log modes accepted in VALIDATION_LOG.
const (
	LogOff    = "off"
	LogStderr = "stderr"
	LogSlog   = "slog"
)

// Config holds the settings of the demo server.
type Config struct {
	Port          string
	AppEnv        string
	ValidationLog string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          os.Getenv("PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		ValidationLog: strings.ToLower(strings.TrimSpace(os.Getenv("VALIDATION_LOG"))),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "dev"
	}
	switch cfg.ValidationLog {
	case LogStderr, LogSlog:
	default:
		cfg.ValidationLog = LogOff
	}
	return cfg
}
