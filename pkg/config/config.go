package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	Host         string
	Env          string
	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptCost   int
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "4000"),
		Host:         getEnv("HOST", ""),
		Env:          getEnv("ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTExpiresIn: getDuration("JWT_EXPIRES_IN", 168*time.Hour),
		BcryptCost:   getInt("BCRYPT_COST", 12),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
