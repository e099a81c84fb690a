package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "STRONGPASS_LENGTH", "STRONGPASS_SECURE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.DefaultLength != 16 {
		t.Errorf("DefaultLength = %d, want 16", cfg.DefaultLength)
	}
	if cfg.Secure {
		t.Error("Secure should default to false")
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STRONGPASS_LENGTH", "24")
	t.Setenv("STRONGPASS_SECURE", "true")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.DefaultLength != 24 {
		t.Errorf("DefaultLength = %d, want 24", cfg.DefaultLength)
	}
	if !cfg.Secure {
		t.Error("Secure = false, want true")
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("RateLimitRPS = %v, want 0.5", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("RateLimitBurst = %d, want fallback 10", cfg.RateLimitBurst)
	}
}

func TestLoadRejectsNonPositiveRateLimit(t *testing.T) {
	tests := []struct {
		rps, burst string
	}{
		{rps: "0", burst: "0"},
		{rps: "-1.5", burst: "-3"},
	}

	for _, tt := range tests {
		t.Setenv("RATE_LIMIT_RPS", tt.rps)
		t.Setenv("RATE_LIMIT_BURST", tt.burst)

		cfg := Load()
		if cfg.RateLimitRPS != 5 {
			t.Errorf("RATE_LIMIT_RPS=%s: RateLimitRPS = %v, want fallback 5", tt.rps, cfg.RateLimitRPS)
		}
		if cfg.RateLimitBurst != 10 {
			t.Errorf("RATE_LIMIT_BURST=%s: RateLimitBurst = %d, want fallback 10", tt.burst, cfg.RateLimitBurst)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{Env: "development"}).Validate(); err != nil {
		t.Errorf("development config: unexpected error %v", err)
	}
	if err := (Config{Env: "production", Secure: true}).Validate(); err != nil {
		t.Errorf("secure production config: unexpected error %v", err)
	}
	if err := (Config{Env: "production"}).Validate(); !errors.Is(err, ErrInsecureProduction) {
		t.Errorf("insecure production config: error = %v, want %v", err, ErrInsecureProduction)
	}
}
