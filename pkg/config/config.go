package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Host platform (identity, access, checkout)
	PlatformAPIBaseURL  string
	PlatformAPIKey      string
	PlatformAppSecret   string
	PlatformAppID       string
	PlatformCompanyID   string
	PlatformHTTPTimeout time.Duration

	// Commission recipient. When empty the single admin-tier user is used.
	PlatformOperatorID string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "herbalroots"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		PlatformAPIBaseURL:  getEnv("PLATFORM_API_BASE_URL", "https://api.whop.com/v5"),
		PlatformAPIKey:      getEnv("PLATFORM_API_KEY", ""),
		PlatformAppSecret:   getEnv("PLATFORM_APP_SECRET", ""),
		PlatformAppID:       getEnv("PLATFORM_APP_ID", ""),
		PlatformCompanyID:   getEnv("PLATFORM_COMPANY_ID", ""),
		PlatformHTTPTimeout: getDurationEnv("PLATFORM_HTTP_TIMEOUT", 5*time.Second),

		PlatformOperatorID: getEnv("PLATFORM_OPERATOR_ID", ""),
	}

	return config, nil
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
