// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// CookieName is the name of the HTTP-only cookie carrying the token.
	CookieName string

	// OpenPaths lists routes reachable without a bearer token, as
	// "METHOD /path" with the path as registered with the router. Kept in
	// configuration so the unauthenticated surface is a deployment
	// decision, not a constant.
	OpenPaths []string

	// Now supplies the current time. Replaceable in tests so the default
	// reporting window (current calendar month) can be pinned.
	Now func() time.Time
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		JWTSecret:  getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		CookieName: getEnv("JWT_COOKIE_NAME", "jwt"),
		OpenPaths: []string{
			"GET /api/health",
			"GET /swagger/*any",
			"POST /api/v1/users",
			"POST /api/v1/auth/signin",
			"PUT /api/v1/auth/forgot-password",
		},
		Now: time.Now,
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "1h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 1h\n", expStr)
		expDur = time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the global configuration. Intended for tests.
func Set(c *Config) {
	appConfig = c
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
