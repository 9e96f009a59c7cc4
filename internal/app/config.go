package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled bool
	Issuer      string
	JWKSURL     string
	Audience    string

	MaxAllocation  int
	RateLimitRPS   float64
	RateLimitBurst int
	MigrateOnStart bool

	SentryDSN         string
	SentryEnvironment string
	LogLevel          string
	LogFormat         string
}

// LoadConfig reads the environment, after loading a .env file when one is
// present in the working directory.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:              envOr(getenv, "PORT", "4040"),
		DSN:               getenv("DB_CONN"),
		Issuer:            getenv("KEYCLOAK_ISSUER"),
		JWKSURL:           getenv("KEYCLOAK_JWKS_URL"),
		Audience:          getenv("KEYCLOAK_AUDIENCE"),
		SentryDSN:         getenv("SENTRY_DSN"),
		SentryEnvironment: envOr(getenv, "SENTRY_ENVIRONMENT", "production"),
		LogLevel:          envOr(getenv, "LOG_LEVEL", "info"),
		LogFormat:         envOr(getenv, "LOG_FORMAT", "text"),
	}

	if cfg.DSN == "" {
		return Config{}, errors.New("missing required environment variable: DB_CONN")
	}

	var errs []error
	cfg.ReadTimeout = parseDuration(getenv, "READ_TIMEOUT", 3*time.Second, &errs)
	cfg.WriteTimeout = parseDuration(getenv, "WRITE_TIMEOUT", 10*time.Second, &errs)
	cfg.AuthEnabled = parseBool(getenv, "AUTH_ENABLED", false, &errs)
	cfg.MigrateOnStart = parseBool(getenv, "MIGRATE_ON_START", false, &errs)
	cfg.MaxAllocation = parseInt(getenv, "MAX_ALLOCATION_SIZE", domain.DefaultMaxAllocation, &errs)
	cfg.RateLimitBurst = parseInt(getenv, "RATE_LIMIT_BURST", 0, &errs)
	if raw := getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps < 0 {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS: invalid value %q", raw))
		}
		cfg.RateLimitRPS = rps
	}
	if cfg.AuthEnabled && cfg.Issuer == "" {
		errs = append(errs, errors.New("AUTH_ENABLED requires KEYCLOAK_ISSUER"))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(getenv func(string) string, key string, def time.Duration, errs *[]error) time.Duration {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		return def
	}
	return d
}

func parseBool(getenv func(string) string, key string, def bool, errs *[]error) bool {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, raw))
		return def
	}
	return b
}

func parseInt(getenv func(string) string, key string, def int, errs *[]error) int {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, raw))
		return def
	}
	return n
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
