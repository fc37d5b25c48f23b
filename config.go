package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the backend.
type Config struct {
	Port         string // HTTP port (default: 8080)
	Env          string // "production" or "development"
	MongoURL     string // MongoDB connection string
	MongoDB      string // Database name (default: beaute)
	RedisURL     string // Redis connection string (optional; empty disables caching)
	KafkaBrokers string // Comma-separated broker list (optional; empty disables events)
	KafkaTopic   string // Order status event topic (default: order-status)
	JWTSecret    string // JWT signing secret
	CORSOrigins  string // Comma-separated allowed origins (default: http://localhost:3000)
}

// LoadConfig loads environment variables into Config struct and validates
// required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("APP_ENV"),
		MongoURL:     os.Getenv("MONGO_URL"),
		MongoDB:      os.Getenv("MONGO_DB"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC_ORDER_STATUS"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigins:  os.Getenv("CORS_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "beaute"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "order-status"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "http://localhost:3000"
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// Brokers splits the configured broker list.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

// Origins splits the configured CORS origin list.
func (c *Config) Origins() []string {
	return splitList(c.CORSOrigins)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
