package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process settings that come from the environment. Credentials
// and the order itself live in the order file (see LoadOrderConfig).
type Config struct {
	// Kraken API
	KrakenBaseURL string
	HTTPTimeout   time.Duration

	// Overall deadline for the run (price lookup + order)
	RunTimeout time.Duration

	OrderConfigPath string

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		KrakenBaseURL: envStr("KRAKEN_BASE_URL", "https://api.kraken.com"),
		HTTPTimeout:   time.Duration(envInt("KRAKEN_HTTP_TIMEOUT_SEC", 10)) * time.Second,
		RunTimeout:    time.Duration(envInt("RUN_TIMEOUT_SEC", 30)) * time.Second,

		OrderConfigPath: envStr("ORDER_CONFIG_PATH", "config.json"),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
