// Package config loads runtime configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port                     string
	DatabaseURL              string
	JWTSecret                string
	JWTIssuer                string
	JWTTTL                   time.Duration
	CORSOrigins              []string
	RequireEmailConfirmation bool
}

// Load reads configuration from the environment and performs minimal
// validation. FRONTEND_URL, when set, joins the CORS allow-list together with
// its https variant.
func Load() (Config, error) {
	cfg := Config{
		Port:                     fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:              strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:                strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:                fallback(os.Getenv("JWT_ISSUER"), "wolf-planner-api"),
		CORSOrigins:              parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "http://localhost:3000,http://localhost:3001")),
		RequireEmailConfirmation: parseBool(os.Getenv("REQUIRE_EMAIL_CONFIRMATION")),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	if frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL")); frontend != "" {
		cfg.CORSOrigins = append(cfg.CORSOrigins, frontend)
		if https := strings.Replace(frontend, "http://", "https://", 1); https != frontend {
			cfg.CORSOrigins = append(cfg.CORSOrigins, https)
		}
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
