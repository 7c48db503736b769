package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Runtime holds CLI runtime settings read from the environment.
type Runtime struct {
	Format string
	Debug  bool
	// Now pins the projection clock when set.
	Now *time.Time
}

// LoadRuntime loads runtime settings from the environment and an optional
// .env file (or the file named by ENV_FILE).
func LoadRuntime() (Runtime, error) {
	rt := Runtime{}

	if err := loadEnv(); err != nil {
		return rt, err
	}

	rt.Format = strings.ToLower(getEnv("LIFEPLAN_FORMAT", "console"))

	debug, err := parseBoolEnv("LIFEPLAN_DEBUG", false)
	if err != nil {
		return rt, err
	}
	rt.Debug = debug

	if value, ok := os.LookupEnv("LIFEPLAN_NOW"); ok && value != "" {
		now, err := time.Parse("2006-01-02", value)
		if err != nil {
			return rt, fmt.Errorf("LIFEPLAN_NOW must be a YYYY-MM-DD date: %w", err)
		}
		rt.Now = &now
	}

	return rt, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
