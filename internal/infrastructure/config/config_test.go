package config

import (
	"testing"
	"time"
)

func TestLoadSolutions_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("NOTIFY_POLL_INTERVAL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := LoadSolutions()

	if cfg.ServerAddress != ":8003" {
		t.Errorf("expected default address :8003, got %q", cfg.ServerAddress)
	}
	if cfg.NotifyPollInterval != 10*time.Second {
		t.Errorf("expected 10s poll interval, got %s", cfg.NotifyPollInterval)
	}
	if cfg.MaxImageSize != 10*1024*1024 {
		t.Errorf("expected 10MiB image limit, got %d", cfg.MaxImageSize)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadAuth_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := LoadAuth()

	if cfg.SecretKey != "s3cret" {
		t.Errorf("expected secret from env, got %q", cfg.SecretKey)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("expected 15m access ttl, got %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 48*time.Hour {
		t.Errorf("expected 48h refresh ttl, got %s", cfg.RefreshTokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
}
