package main

import (
	"fmt"
	"os"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	RedisURL string
	Env      string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  getEnv("MONGO_DB", "ontaste"),
		RedisURL: os.Getenv("REDIS_URL"), // optional; empty disables the menu cache
		Env:      getEnv("APP_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
