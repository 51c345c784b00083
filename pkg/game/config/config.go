// Package config reads the game's settings from the environment, after
// loading an optional .env file.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"moneymoves/pkg/game/storage"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // used while a surface owns the terminal
	Store       storage.Options
	Renderer    string
	TileSize    float64
	Locale      string
}

var (
	mu      sync.RWMutex
	current = defaults()
)

func defaults() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    slog.LevelInfo,
		Store:       storage.Options{Kind: storage.KindFile},
		Renderer:    "ebiten",
		TileSize:    32,
		Locale:      "en",
	}
}

// Load reads .env (if present) and the environment, and makes the result
// the current config.
func Load() *Config {
	// a missing .env is normal
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("MM_LOG_FILE", ""),
		Store: storage.Options{
			Kind:       storage.Kind(strings.ToLower(getEnv("MM_STORE", string(storage.KindFile)))),
			Dir:        getEnv("MM_SAVE_DIR", ""),
			RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379/0"),
			SQLitePath: getEnv("MM_SQLITE_PATH", "moneymoves.db"),
		},
		Renderer: strings.ToLower(getEnv("MM_RENDERER", "ebiten")),
		TileSize: parseFloat(getEnv("MM_TILE_SIZE", "32"), 32),
		Locale:   getEnv("MM_LOCALE", "en"),
	}

	mu.Lock()
	current = cfg
	mu.Unlock()
	return cfg
}

// Current returns the last loaded config, or the defaults
func Current() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
