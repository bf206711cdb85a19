package config

import (
	"os"
)

type Config struct {
	DBDriver          string
	DatabaseURL       string
	Port              string
	AccessTokenSecret string
	GinMode           string
	LogLevel          string
}

func Load() *Config {
	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost user=taskuser password=taskpassword dbname=taskmanager port=5432 sslmode=disable"),
		Port:              getEnv("PORT", "5000"),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", "default-secret-key-change-me"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
