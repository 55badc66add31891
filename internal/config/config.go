// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server needs at startup. DatabaseURL may be
// empty, in which case the journal runs on the in-memory repository.
type Config struct {
	ListenAddr  string
	DatabaseURL string

	AdminUsername     string
	AdminPasswordHash string // bcrypt

	UploadDir    string
	PushInterval time.Duration

	LogLevel string
	LogFile  string
}

// Load reads the environment. A missing .env file is fine.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:        envOr("LISTEN_ADDR", ":8080"),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AdminUsername:     envOr("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		UploadDir:         envOr("UPLOAD_DIR", "uploads"),
		PushInterval:      5 * time.Second,
		LogLevel:          envOr("LOG_LEVEL", "info"),
		LogFile:           strings.TrimSpace(os.Getenv("LOG_FILE")),
	}

	if v := strings.TrimSpace(os.Getenv("WS_PUSH_INTERVAL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PushInterval = d
		}
	}

	// Convenience for local runs: a plain ADMIN_PASSWORD is hashed at
	// startup when no precomputed hash is supplied.
	if cfg.AdminPasswordHash == "" {
		if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
			if hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost); err == nil {
				cfg.AdminPasswordHash = string(hash)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
