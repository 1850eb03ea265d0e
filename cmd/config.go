package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort           = "8080"
	defaultStaleDraftTTL      = 72 * time.Hour
	defaultStaleDraftSchedule = "0 */10 * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	StaleDraftTTL      time.Duration
	StaleDraftSchedule string
}

// LoadConfig reads envFile if it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	ttl := defaultStaleDraftTTL
	if raw := os.Getenv("STALE_DRAFT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("STALE_DRAFT_TTL: %w", err)
		}
		ttl = parsed
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StaleDraftTTL:      ttl,
		StaleDraftSchedule: getEnv("STALE_DRAFT_SCHEDULE", defaultStaleDraftSchedule),
	}, nil
}

// DSN returns the key/value connection string understood by the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
