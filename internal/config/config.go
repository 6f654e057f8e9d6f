package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// OperatorConfig holds the single set of credentials the extension logs in with.
type OperatorConfig struct {
	Email        string
	PasswordHash string
	Role         string
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port                string
	JWTSecret           string
	TokenTTL            time.Duration
	Operator            OperatorConfig
	AutomationURL       string
	DefaultOrganization string
	VCardCountry        string
	JobRoles            []string
	RateLimitVCard      RateLimitConfig
	RateLimitJobs       RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:  parseDuration(getEnv("JWT_TTL", "24h")),
		Operator: OperatorConfig{
			Email:        strings.ToLower(os.Getenv("OPERATOR_EMAIL")),
			PasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
			Role:         getEnv("OPERATOR_ROLE", "coordinator"),
		},
		AutomationURL:       os.Getenv("AUTOMATION_URL"),
		DefaultOrganization: getEnv("DEFAULT_ORGANIZATION", "North Park Cleaners"),
		VCardCountry:        getEnv("VCARD_COUNTRY", "USA"),
		JobRoles:            parseList(getEnv("JOB_ROLES", "coordinator,admin")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_VCARD", "60/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_VCARD value: %w", err)
	}
	cfg.RateLimitVCard = rl

	rl, err = parseRateLimit(getEnv("RATE_LIMIT_JOBS", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_JOBS value: %w", err)
	}
	cfg.RateLimitJobs = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

// parseList splits a comma separated value, dropping blanks.
func parseList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
