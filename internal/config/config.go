package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	Env         string // dev|prod
	LogLevel    string
	CORSOrigins string

	// Storage selection
	StoreBackend string

	// Database configuration (StoreBackend sql)
	DBType            string // mysql, postgres, sqlite, sqlite3, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Redis configuration (StoreBackend redis)
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// The single shared credential, seeded on first run
	Auth Credential

	// Error reporting
	SentryDSN string
	Release   string
}

// Credential is the configured login. It is read once at start and never changed.
type Credential struct {
	Username string
	Password string
	Token    string
}

// Load loads configuration from environment variables, after applying the
// .env file named by ENV_FILE when it is set
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		Env:               getEnv("ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:8081,http://localhost:19006"),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		DBType:            strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RedisKeyPrefix:    getEnv("REDIS_KEY_PREFIX", "guardroster"),
		Auth: Credential{
			Username: getEnv("AUTH_USERNAME", ""),
			Password: getEnv("AUTH_PASSWORD", ""),
			Token:    getEnv("AUTH_TOKEN", ""),
		},
		SentryDSN: getEnv("SENTRY_DSN", ""),
		Release:   getEnv("RELEASE", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields for the selected backend
func (c *Config) Validate() error {
	if c.Auth.Username == "" {
		return fmt.Errorf("AUTH_USERNAME is required")
	}
	if c.Auth.Password == "" {
		return fmt.Errorf("AUTH_PASSWORD is required")
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendSQL:
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required")
		}
		if c.DBType != "sqlite" && c.DBType != "sqlite3" && c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return fmt.Errorf("unsupported store backend: %s", c.StoreBackend)
	}

	return nil
}

// AllowedOrigins splits CORS_ORIGINS into a trimmed list
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
