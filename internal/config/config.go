package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
)

// ErrInsecureProduction is returned by Validate when the API would serve
// passwords from the non-cryptographic source in production.
var ErrInsecureProduction = errors.New("STRONGPASS_SECURE must be enabled in production environment")

type Config struct {
	Port           string
	Env            string
	DefaultLength  int
	Secure         bool
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DefaultLength:  getEnvInt("STRONGPASS_LENGTH", 16),
		Secure:         getEnvBool("STRONGPASS_SECURE", false),
		RateLimitRPS:   getEnvPositiveFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvPositiveInt("RATE_LIMIT_BURST", 10),
	}
}

// Validate checks settings that only matter when serving the API.
func (c Config) Validate() error {
	if c.Env == "production" && !c.Secure {
		return ErrInsecureProduction
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

// getEnvPositiveInt is getEnvInt for settings where zero or a negative
// value would silently disable the feature.
func getEnvPositiveInt(key string, fallback int) int {
	n := getEnvInt(key, fallback)
	if n <= 0 {
		slog.Warn("ignoring non-positive setting", "key", key, "value", n)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvPositiveFloat(key string, fallback float64) float64 {
	f := getEnvFloat(key, fallback)
	if f <= 0 {
		slog.Warn("ignoring non-positive setting", "key", key, "value", f)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid boolean setting", "key", key, "value", v)
		return fallback
	}
	return b
}
