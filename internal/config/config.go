package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr             = ":8080"
	defaultJWTTTL               = "24h"
	defaultJWTSecret            = "change-me-jwt-secret"
	defaultRoomCacheTTL         = "10m"
	defaultFullRefundDays       = "7"
	defaultPartialRefundDays    = "3"
	defaultPartialRefundPercent = "50"
	defaultNoShowSweepSpec      = "0 2 * * *"
)

// CancellationPolicy carries the refund tiers the policy engine applies.
// The thresholds are business rules a deployment tunes, not code constants.
type CancellationPolicy struct {
	FullRefundDays       int
	PartialRefundDays    int
	PartialRefundPercent float64
}

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RoomCacheTTL  time.Duration

	Cancellation CancellationPolicy

	// Cron spec for the no-show sweep in cmd/opsjobs.
	NoShowSweepSpec string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB, err = parseIntEnv("REDIS_DB", "0")
	if err != nil {
		return nil, err
	}
	cfg.RoomCacheTTL, err = parseDurationEnv("ROOM_CACHE_TTL", defaultRoomCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg.Cancellation.FullRefundDays, err = parseIntEnv("CANCEL_FULL_REFUND_DAYS", defaultFullRefundDays)
	if err != nil {
		return nil, err
	}
	cfg.Cancellation.PartialRefundDays, err = parseIntEnv("CANCEL_PARTIAL_REFUND_DAYS", defaultPartialRefundDays)
	if err != nil {
		return nil, err
	}
	cfg.Cancellation.PartialRefundPercent, err = parseFloatEnv("CANCEL_PARTIAL_REFUND_PERCENT", defaultPartialRefundPercent)
	if err != nil {
		return nil, err
	}

	cfg.NoShowSweepSpec = getEnv("NOSHOW_SWEEP_SPEC", defaultNoShowSweepSpec)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	p := cfg.Cancellation
	if p.FullRefundDays < p.PartialRefundDays {
		return fmt.Errorf("CANCEL_FULL_REFUND_DAYS must be >= CANCEL_PARTIAL_REFUND_DAYS")
	}
	if p.PartialRefundDays < 0 {
		return fmt.Errorf("CANCEL_PARTIAL_REFUND_DAYS must be >= 0")
	}
	if p.PartialRefundPercent < 0 || p.PartialRefundPercent > 100 {
		return fmt.Errorf("CANCEL_PARTIAL_REFUND_PERCENT must be within 0..100")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
