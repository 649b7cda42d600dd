package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBUrl       string
	Environment string
	Port        string

	// CORSAllowedOrigins is the fixed allow-list of origins permitted to
	// call the API from a browser.
	CORSAllowedOrigins []string

	// Staff API credentials and token signing.
	JWTSecret         string
	StaffEmail        string
	StaffPasswordHash string

	Email EmailConfig
}

// EmailConfig holds configuration for the confirmation mailer.
type EmailConfig struct {
	Provider    string // "ses" or "noop"
	FromAddress string
	FromName    string
	AWSRegion   string
	AWSKeyID    string
	AWSSecret   string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		DBUrl:             os.Getenv("DATABASE_URL"),
		Port:              os.Getenv("PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		StaffEmail:        os.Getenv("STAFF_EMAIL"),
		StaffPasswordHash: os.Getenv("STAFF_PASSWORD_HASH"),
		Email: EmailConfig{
			Provider:    os.Getenv("EMAIL_PROVIDER"),
			FromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:    os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:   os.Getenv("AWS_REGION"),
			AWSKeyID:    os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecret:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	// DATABASE_URL has no default on purpose. An empty value is a
	// deployment misconfiguration; main wires the registration service
	// without a store so every request gets the configuration error
	// instead of the process crashing at startup.

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
