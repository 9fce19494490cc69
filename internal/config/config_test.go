package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "hirehub")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoadCollectsMissingVars(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
		t.Setenv(key, "")
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for missing required variables")
	}
	for _, key := range []string{"APP_NAME", "HTTP_PORT", "JWT_REFRESH_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected %s in the error, got %q", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "")
	t.Setenv("DB_CONNECT_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Errorf("expected 15m access default, got %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.JWT.RefreshExpiresIn != 7*24*time.Hour {
		t.Errorf("expected 168h refresh default, got %s", cfg.JWT.RefreshExpiresIn)
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Errorf("expected 5s connect timeout, got %s", cfg.Database.ConnectTimeout)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "30m")
	t.Setenv("DB_POOL_MAX_CONNS", "25")
	t.Setenv("DB_SSL_MODE", "require")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.PoolMaxConns != 25 {
		t.Errorf("expected pool max 25, got %d", cfg.Database.PoolMaxConns)
	}
	if cfg.Database.DBSSLMode != "require" {
		t.Errorf("expected require, got %q", cfg.Database.DBSSLMode)
	}
}

func TestLoadIgnoresMalformedOptionalValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "soon")
	t.Setenv("DB_POOL_MAX_CONNS", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Errorf("expected default on parse failure, got %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.PoolMaxConns != 0 {
		t.Errorf("expected default on negative value, got %d", cfg.Database.PoolMaxConns)
	}
}
