package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"finledger/internal/logger"
)

type Config struct {
	AppPort      string
	LogLevel     string
	LogJSON      bool
	Currency     string

	// Storage
	StoreBackend string // memory | file | sqlite | postgres
	LedgerFile   string
	SQLitePath   string
	DatabaseURL  string

	// Redis rate limiting (optional; limiter is disabled when addr is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	APIRateLimit  int
	APIRateWindow int // seconds
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       envOr("APP_PORT", "8080"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
		Currency:      envOr("CURRENCY", "USD"),
		StoreBackend:  envOr("STORE_BACKEND", "file"),
		LedgerFile:    envOr("LEDGER_FILE", "transactions.json"),
		SQLitePath:    envOr("SQLITE_PATH", "finledger.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		APIRateLimit:  envInt("API_RATE_LIMIT", 60),
		APIRateWindow: envInt("API_RATE_WINDOW_SECONDS", 60),
	}

	switch cfg.StoreBackend {
	case "memory", "file", "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			logger.Fatal("DATABASE_URL is not set but STORE_BACKEND is postgres")
		}
	default:
		logger.Fatal("unknown STORE_BACKEND", "backend", cfg.StoreBackend)
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
