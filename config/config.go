package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, loaded once at boot.
type Config struct {
	Port     string
	Mongo    MongoConfig
	JWT      JWTConfig
	Stripe   StripeConfig
	SendGrid SendGridConfig
}

type MongoConfig struct {
	URI string
	DB  string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type StripeConfig struct {
	SecretKey string
}

type SendGridConfig struct {
	APIKey string
	Sender string
}

// Load reads .env (if present) and the environment, applies defaults, and
// validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Mongo: MongoConfig{
			URI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DB:  getEnv("MONGO_DB", "bistroDB"),
		},
		JWT: JWTConfig{
			Secret: getEnv("ACCESS_TOKEN_SECRET", ""),
			TTL:    time.Hour,
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		},
		SendGrid: SendGridConfig{
			APIKey: getEnv("SENDGRID_API_KEY", ""),
			Sender: getEnv("EMAIL_SENDER", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the server cannot run without. Stripe and
// SendGrid keys are optional; the features degrade when absent.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Mongo.DB == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
