package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "petcare.db"
	defaultListenAddr  = ":8080"
	defaultJWTTTL      = "24h"
	defaultJWTSecret   = "change-me-jwt-secret"
)

type Config struct {
	AppEnv             string
	DatabaseURL        string
	ListenAddr         string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = getenv("DATABASE_URL", defaultDatabaseURL)
	cfg.ListenAddr = getenv("LISTEN_ADDR", defaultListenAddr)
	cfg.JWTSecret = getenv("JWT_SECRET", defaultJWTSecret)

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	// e.g. CORS_ALLOWED_ORIGINS=https://app.petcare.kz,https://admin.petcare.kz
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
