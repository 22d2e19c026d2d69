package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all runtime configuration, read from the environment.
type Config struct {
	Port               string
	Env                string
	DatabaseDSN        string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	CookieSecure       bool
	AllowedOrigins     []string
}

func Load() Config {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/quillbox?parseTime=true"),
		AccessTokenSecret:  getEnv("ACCESS_SECRET_TOKEN", devSecret),
		RefreshTokenSecret: getEnv("REFRESH_SECRET_TOKEN", devSecret),
		AccessTokenTTL:     getDuration("ACCESS_TOKEN_EXPIRES_IN", 15*time.Minute),
		RefreshTokenTTL:    getDuration("REFRESH_TOKEN_EXPIRES_IN", 7*24*time.Hour),
		CookieSecure:       getEnv("COOKIE_SECURE", "false") == "true",
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	if cfg.Env == "production" {
		if cfg.AccessTokenSecret == devSecret || cfg.RefreshTokenSecret == devSecret {
			slog.Error("ACCESS_SECRET_TOKEN and REFRESH_SECRET_TOKEN must be set in production environment")
			os.Exit(1)
		}
		if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
			slog.Error("access and refresh signing secrets must differ")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
