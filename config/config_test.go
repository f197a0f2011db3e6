package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("AISLEFINDER_SERVER_PORT")
		os.Unsetenv("AISLEFINDER_SERVER_ENVIRONMENT")
		os.Unsetenv("AISLEFINDER_KROGER_CLIENT_ID")
		os.Unsetenv("AISLEFINDER_KROGER_CLIENT_SECRET")
		os.Unsetenv("AISLEFINDER_KROGER_BASE_URL")
		os.Unsetenv("AISLEFINDER_KROGER_LOCATION_ID")
		os.Unsetenv("AISLEFINDER_RETRY_MAX_ATTEMPTS")
		os.Unsetenv("AISLEFINDER_RETRY_BACKOFF_FACTOR")
		os.Unsetenv("AISLEFINDER_RESOLVER_DEFAULT_FORMAT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Kroger.ClientID != "aislefinder4000-bbc6d2p3" {
			t.Errorf("Kroger.ClientID = %s, want embedded default", cfg.Kroger.ClientID)
		}
		if cfg.Kroger.BaseURL != "https://api.kroger.com/v1" {
			t.Errorf("Kroger.BaseURL = %s, want https://api.kroger.com/v1", cfg.Kroger.BaseURL)
		}
		if cfg.Retry.MaxAttempts != 3 {
			t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
		}
		if cfg.Retry.BackoffFactor != time.Second {
			t.Errorf("Retry.BackoffFactor = %v, want 1s", cfg.Retry.BackoffFactor)
		}
		if cfg.Resolver.DefaultFormat != "aisle" {
			t.Errorf("Resolver.DefaultFormat = %s, want aisle", cfg.Resolver.DefaultFormat)
		}
	})

	t.Run("missing client secret is not a load error", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Kroger.ClientSecret != "" {
			t.Errorf("Kroger.ClientSecret = %q, want empty", cfg.Kroger.ClientSecret)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("AISLEFINDER_SERVER_PORT", "9090")
		os.Setenv("AISLEFINDER_SERVER_ENVIRONMENT", "production")
		os.Setenv("AISLEFINDER_KROGER_CLIENT_SECRET", "s3cret")
		os.Setenv("AISLEFINDER_KROGER_LOCATION_ID", "70100070")
		os.Setenv("AISLEFINDER_RETRY_BACKOFF_FACTOR", "250ms")
		os.Setenv("AISLEFINDER_RESOLVER_DEFAULT_FORMAT", "category")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Kroger.ClientSecret != "s3cret" {
			t.Errorf("Kroger.ClientSecret = %s, want s3cret", cfg.Kroger.ClientSecret)
		}
		if cfg.Kroger.LocationID != "70100070" {
			t.Errorf("Kroger.LocationID = %s, want 70100070", cfg.Kroger.LocationID)
		}
		if cfg.Retry.BackoffFactor != 250*time.Millisecond {
			t.Errorf("Retry.BackoffFactor = %v, want 250ms", cfg.Retry.BackoffFactor)
		}
		if cfg.Resolver.DefaultFormat != "category" {
			t.Errorf("Resolver.DefaultFormat = %s, want category", cfg.Resolver.DefaultFormat)
		}
	})

	t.Run("fails validation for invalid default format", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("AISLEFINDER_RESOLVER_DEFAULT_FORMAT", "route")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid default format")
		}
	})

	t.Run("fails validation for zero retry attempts", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("AISLEFINDER_RETRY_MAX_ATTEMPTS", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero retry attempts")
		}
	})
}
