package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port         string
	PostgresDSN  string
	SessionTTL   time.Duration
	SeedDemoData bool
	Environment  string
}

// LoadConfig reads .env when present, then the environment, applies defaults,
// and validates basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         envDefault("PORT", "8080"),
		PostgresDSN:  strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SessionTTL:   employeesapp.DefaultSessionTTL,
		SeedDemoData: isTruthy(os.Getenv("SEED_DEMO_DATA")),
		Environment:  envDefault("ENVIRONMENT", "local"),
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
