package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBDriver    string
	DBConn      string
	LogLevel    string
	LogFormat   string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	APIPrefix   string
	CORSOrigins []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

// NewConfig loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=fitbyte password=fitbyte dbname=fitbyte sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "json")),
		JWTSecret:    getEnv("JWT_SECRET", "fitbyte-dev-secret"),
		APIPrefix:    getEnv("API_PREFIX", "/api"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "FitByte <no-reply@fitbyte.local>"),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	cfg.TokenTTL = ttl

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if cost < 4 || cost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cost)
	}
	cfg.BcryptCost = cost

	switch cfg.DBDriver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.APIPrefix != "" && !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	cfg.APIPrefix = strings.TrimRight(cfg.APIPrefix, "/")

	return cfg, nil
}

// EmailEnabled reports whether outgoing mail is configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
