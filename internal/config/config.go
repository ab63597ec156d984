package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	HistoryBackendDynamoDB = "dynamodb"
	HistoryBackendSQLite   = "sqlite"
	HistoryBackendMemory   = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig
	Prediction PredictionConfig
	History    HistoryConfig
	Pricing    PricingConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Port           int
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// PredictionConfig configures the remote prediction service client.
// An empty Endpoint disables the remote path entirely.
type PredictionConfig struct {
	Endpoint     string
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
	ModelVersion string
}

type HistoryConfig struct {
	Backend    string
	UsersTable string
	SQLitePath string
}

// PricingConfig points at an alternative unit-price catalog.
// An empty CatalogPath uses the catalog bundled in the binary.
type PricingConfig struct {
	CatalogPath string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables, after loading an
// optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Prediction: PredictionConfig{
			Endpoint:     getEnv("PREDICTION_ENDPOINT", ""),
			Timeout:      time.Duration(getEnvAsInt("PREDICTION_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxRetries:   getEnvAsInt("PREDICTION_MAX_RETRIES", 0),
			RetryDelay:   time.Duration(getEnvAsInt("PREDICTION_RETRY_DELAY_MS", 2000)) * time.Millisecond,
			ModelVersion: getEnv("PREDICTION_MODEL_VERSION", "1.0.0"),
		},
		History: HistoryConfig{
			Backend:    strings.ToLower(getEnv("HISTORY_BACKEND", HistoryBackendDynamoDB)),
			UsersTable: getEnv("USERS_TABLE", "users"),
			SQLitePath: getEnv("HISTORY_SQLITE_PATH", "./history.db"),
		},
		Pricing: PricingConfig{
			CatalogPath: getEnv("PRICING_CATALOG_PATH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Prediction.Timeout <= 0 {
		slog.Warn("[config] non-positive prediction timeout, using default", "seconds", cfg.Prediction.Timeout.Seconds())
		cfg.Prediction.Timeout = 30 * time.Second
	}
	if cfg.Prediction.MaxRetries < 0 {
		slog.Warn("[config] negative prediction retries, using 0", "value", cfg.Prediction.MaxRetries)
		cfg.Prediction.MaxRetries = 0
	}
	if cfg.Prediction.RetryDelay <= 0 {
		cfg.Prediction.RetryDelay = 2 * time.Second
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		slog.Warn("[config] invalid integer value, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

// SplitList splits a comma separated setting, dropping empty entries.
func SplitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
