package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	// Base URL of the external user-profile backend (plan updates are PATCHed there).
	ProfileAPIBaseURL string
	// Prediction endpoint for the legal-assistant chat proxy. Chat is disabled when empty.
	AssistantPredictionURL string
	// Optional Postgres DSN for the processed-session store. Dedup is disabled when empty.
	DatabaseURL string
	// Fallback origin for checkout success/cancel URLs when the request carries none.
	SiteBaseURL string
	// Server port
	HTTPPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Get required environment variables
	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"StripeWebhookSecret", "STRIPE_WEBHOOK_SECRET", "Stripe Webhook Secret", true},
		{"ProfileAPIBaseURL", "PROFILE_API_BASE_URL", "Profile API Base URL", false},
		{"AssistantPredictionURL", "ASSISTANT_PREDICTION_URL", "Assistant Prediction URL", false},
		{"DatabaseURL", "DATABASE_URL", "Database URL", false},
		{"SiteBaseURL", "SITE_BASE_URL", "Site Base URL", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.ProfileAPIBaseURL == "" {
		config.ProfileAPIBaseURL = "https://bearister-server.onrender.com"
	}
	if config.SiteBaseURL == "" {
		config.SiteBaseURL = "http://localhost:3000"
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	return config, nil
}
