// internal/config/config.go
//
// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is the full process configuration. DatabaseURL, RedisAddr and
// AuthSecret are optional; empty values disable the corresponding feature.
type Config struct {
	Addr          string
	LogLevel      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	AuthSecret    string
}

// Load reads the environment. A missing .env file is not an error.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}

	return Config{
		Addr:          getenv("ADDR", "127.0.0.1:8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AuthSecret:    os.Getenv("AUTH_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
