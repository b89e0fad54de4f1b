package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultBcryptCost = 10

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	supabaseConnStr := os.Getenv("SUPABASE_CONNECTION_STRING")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")

	if supabaseConnStr == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "3000"
	}

	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	bcryptCost := defaultBcryptCost

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < 4 || cost > 31 {
			return nil, fmt.Errorf("BCRYPT_COST must be an integer between 4 and 31, got %q", v)
		}

		bcryptCost = cost
	}

	return &Config{
		Environment:           environment,
		Port:                  port,
		BaseURL:               baseURL,
		SupabaseConnString:    supabaseConnStr,
		JWTSecret:             jwtSecret,
		BcryptCost:            bcryptCost,
		GoogleClientID:        os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:    os.Getenv("GOOGLE_CLIENT_SECRET"),
		MicrosoftClientID:     os.Getenv("MICROSOFT_CLIENT_ID"),
		MicrosoftClientSecret: os.Getenv("MICROSOFT_CLIENT_SECRET"),
		SessionSecret:         os.Getenv("SESSION_SECRET"),
		RedisURL:              os.Getenv("REDIS_URL"),
		DemoLoginEnabled:      boolFromEnv("DEMO_LOGIN_ENABLED", false),
		NotificationsEnabled:  boolFromEnv("NOTIFICATIONS_ENABLED", true),
	}, nil
}

// reads a boolean environment variable, returning the fallback when unset or
// unparseable
func boolFromEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return parsed
}
