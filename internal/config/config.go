package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported values for DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
	Database    Database
}

// Database describes how to reach the user store. URL, when set, takes
// precedence over the discrete fields.
type Database struct {
	Driver   string
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	TLS      bool
	MaxConns int
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	env := fallback(os.Getenv("NODE_ENV"), fallback(os.Getenv("APP_ENV"), "development"))

	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		Env:         env,
		LogLevel:    fallback(os.Getenv("LOG_LEVEL"), "info"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		Database: Database{
			Driver:   strings.ToLower(fallback(os.Getenv("DB_DRIVER"), DriverMySQL)),
			URL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
			Host:     fallback(os.Getenv("DB_HOST"), "localhost"),
			User:     fallback(os.Getenv("DB_USER"), "root"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     fallback(os.Getenv("DB_NAME"), "casino"),
			TLS:      strings.EqualFold(env, "production"),
		},
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("PORT %q is not a valid port", cfg.Port)
	}

	switch cfg.Database.Driver {
	case DriverMySQL:
		cfg.Database.Port = 3306
	case DriverPostgres:
		cfg.Database.Port = 5432
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("DB_DRIVER %q is not supported", cfg.Database.Driver)
	}

	if raw := strings.TrimSpace(os.Getenv("DB_PORT")); raw != "" {
		port, err := strconv.ParseUint(raw, 10, 16)
		if err != nil || port == 0 {
			return Config{}, fmt.Errorf("DB_PORT %q is not a valid port", raw)
		}
		cfg.Database.Port = int(port)
	}

	cfg.Database.MaxConns = 10
	if raw := strings.TrimSpace(os.Getenv("DB_MAX_CONNS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("DB_MAX_CONNS %q must be a positive integer", raw)
		}
		cfg.Database.MaxConns = n
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Production reports whether the service runs with production settings.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
