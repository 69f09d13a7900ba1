package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars
type Config struct {
	ServerPort  string
	GinMode     string
	DB          DBConfig
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// LoadConfig reads configuration from the environment. A .env file, if any,
// is expected to have been loaded by the caller.
func LoadConfig() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:  fallback(os.Getenv("SERVER_PORT"), "8080"),
		GinMode:     fallback(os.Getenv("GIN_MODE"), "debug"),
		DB:          *dbCfg,
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET_KEY")),
		LogLevel:    fallback(os.Getenv("LOG_LEVEL"), "info"),
		LogFormat:   fallback(os.Getenv("LOG_FORMAT"), "json"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY not set in environment")
	}

	jwtExpHours, err := strconv.ParseInt(fallback(os.Getenv("JWT_EXPIRATION_HOURS"), "24"), 10, 64)
	if err != nil || jwtExpHours <= 0 {
		slog.Warn("Invalid JWT_EXPIRATION_HOURS, defaulting to 24", "value", os.Getenv("JWT_EXPIRATION_HOURS"))
		jwtExpHours = 24
	}
	cfg.JWTTTL = time.Duration(jwtExpHours) * time.Hour

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
