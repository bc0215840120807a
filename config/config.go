package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration, read from environment
// variables (a .env file in development).
type Config struct {
	Server     ServerConfig
	JWT        JWTConfig
	Firestore  FirestoreConfig
	OpenAI     OpenAIConfig
	Maps       MapsConfig
	NLP        NLPConfig
	Prediction PredictionConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port        string
	Environment string
	ClientURL   string
}

type JWTConfig struct {
	Secret            string
	Expiration        time.Duration
	RefreshExpiration time.Duration
}

type FirestoreConfig struct {
	// Base64-encoded service-account JSON.
	Credentials string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type MapsConfig struct {
	APIKey string
}

type NLPConfig struct {
	// Base64-encoded service-account JSON; empty disables entity
	// extraction.
	Credentials string
}

type PredictionConfig struct {
	BaseURL string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			ClientURL:   getEnv("CLIENT_URL", "http://localhost:5173"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "dev-secret-key"),
			Expiration:        parseDuration(getEnv("JWT_EXPIRATION", "30m"), 30*time.Minute),
			RefreshExpiration: parseDuration(getEnv("REFRESH_TOKEN_EXPIRATION", "168h"), 7*24*time.Hour),
		},
		Firestore: FirestoreConfig{
			Credentials: os.Getenv("FIREBASE_CREDENTIALS"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getEnv("OPENAI_MODEL", ""),
		},
		Maps: MapsConfig{
			APIKey: os.Getenv("MAPS_CREDENTIALS"),
		},
		NLP: NLPConfig{
			Credentials: os.Getenv("NATURAL_LANGUAGE_CREDENTIALS"),
		},
		Prediction: PredictionConfig{
			BaseURL: getEnv("PREDICTION_SERVICE_URL", "http://localhost:8501"),
		},
		RateLimit: RateLimitConfig{
			Requests: parseInt(getEnv("RATE_LIMIT_REQUESTS", "100"), 100),
			Window:   parseDuration(getEnv("RATE_LIMIT_WINDOW", "60s"), 60*time.Second),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Validate fails fast on configuration the service cannot run without.
func (c *Config) Validate() {
	if c.Firestore.Credentials == "" {
		log.Fatal("FIREBASE_CREDENTIALS must be set")
	}
	if c.JWT.Secret == "dev-secret-key" && c.IsProduction() {
		log.Fatal("JWT_SECRET must be set in production")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	// A bare number is taken as seconds.
	if i, err := strconv.Atoi(s); err == nil {
		return time.Duration(i) * time.Second
	}
	return defaultValue
}
