package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr   = ":8080"
	defaultDBPath       = "chorus.db"
	defaultSettingsPath = "settings.yml"
	defaultMaxWait      = 8 * time.Second
	defaultTokenTTL     = 10 * time.Minute

	envListenAddr   = "CHORUS_LISTEN_ADDR"
	envDBPath       = "CHORUS_DB_PATH"
	envSettingsPath = "CHORUS_SETTINGS_PATH"
	envLogLevel     = "CHORUS_LOG_LEVEL"
	envMaxWaitMS    = "CHORUS_MAX_WAIT_MS"
	envTokenTTLMin  = "CHORUS_TOKEN_TTL_MIN"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	ListenAddr   string
	DBPath       string
	SettingsPath string
	LogLevel     slog.Level
	// MaxWait is the default collection deadline for searches that do not
	// specify one.
	MaxWait  time.Duration
	TokenTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DBPath:       defaultDBPath,
		SettingsPath: defaultSettingsPath,
		LogLevel:     slog.LevelInfo,
		MaxWait:      defaultMaxWait,
		TokenTTL:     defaultTokenTTL,
	}

	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(envSettingsPath); v != "" {
		cfg.SettingsPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}
	if v := os.Getenv(envMaxWaitMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.MaxWait = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv(envTokenTTLMin); v != "" {
		if min, err := strconv.Atoi(v); err == nil && min > 0 {
			cfg.TokenTTL = time.Duration(min) * time.Minute
		}
	}

	return cfg
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured JSON logger writing to w at the configured level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
