// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"forum-directory/models"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Addr     string
	LogLevel string

	Unions       []string
	DefaultUnion string
	Seed         bool

	AdminPassword     string
	AdminPasswordHash string // bcrypt hash; takes precedence over AdminPassword
	JWTSecret         string
	JWTTTL            time.Duration

	SessionStore  string
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:              getEnv("DIRECTORY_ADDR", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultUnion:      getEnv("DIRECTORY_DEFAULT_UNION", models.DefaultFallbackUnion),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionStore:      strings.ToLower(getEnv("IMPORT_SESSION_STORE", SessionStoreMemory)),
		RedisAddr:         getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
	}

	cfg.Unions = models.DefaultUnions
	if raw := os.Getenv("DIRECTORY_UNIONS"); raw != "" {
		cfg.Unions = strings.Split(raw, ",")
	}

	var err error
	if cfg.Seed, err = strconv.ParseBool(getEnv("DIRECTORY_SEED", "true")); err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_SEED: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("IMPORT_SESSION_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("invalid IMPORT_SESSION_TTL: %w", err)
	}

	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return nil, fmt.Errorf("unknown IMPORT_SESSION_STORE %q", cfg.SessionStore)
	}

	// A generated secret lasts for the process lifetime only.
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
	}

	return cfg, nil
}
