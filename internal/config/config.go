package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Redis RedisConfig

	// DatabaseURL switches the storage engine from the in-memory maps to
	// PostgreSQL when set.
	DatabaseURL string

	// JWTSecret enables bearer-token auth on the API routes when set.
	// The demo default leaves every endpoint open.
	JWTSecret string

	SeedDemoData bool
	LogLevel     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from a .env file if present, falling back to
// environment variables.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return &Config{
		Port: getEnv("PORT", "8080"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
