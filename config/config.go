package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Kroger   KrogerConfig
	Retry    RetryConfig
	Resolver ResolverConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// KrogerConfig holds Kroger API configuration. The client secret is read
// from the environment (AISLEFINDER_KROGER_CLIENT_SECRET) and deliberately
// not validated here: a missing secret surfaces as an auth error at the
// first credential exchange, not at startup.
type KrogerConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	BaseURL      string `mapstructure:"base_url"`
	AuthURL      string `mapstructure:"auth_url"`
	LocationID   string `mapstructure:"location_id"`
}

// RetryConfig holds remote-call retry configuration
type RetryConfig struct {
	MaxAttempts   int           `mapstructure:"max_attempts"`
	BackoffFactor time.Duration `mapstructure:"backoff_factor"`
}

// ResolverConfig holds resolution and formatting configuration
type ResolverConfig struct {
	DefaultFormat      string `mapstructure:"default_format"`
	EnableDebugLogging bool   `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/aislefinder/")

	// Environment variable settings. Nested keys like kroger.client_secret
	// must map to AISLEFINDER_KROGER_CLIENT_SECRET, so dots become
	// underscores before the automatic lookup.
	v.SetEnvPrefix("AISLEFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Kroger defaults; the client id is fixed for this application
	v.SetDefault("kroger.client_id", "aislefinder4000-bbc6d2p3")
	v.SetDefault("kroger.base_url", "https://api.kroger.com/v1")
	v.SetDefault("kroger.auth_url", "https://api.kroger.com/v1/connect/oauth2/token")
	v.SetDefault("kroger.location_id", "01400943")

	// Retry defaults
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.backoff_factor", "1s")

	// Resolver defaults
	v.SetDefault("resolver.default_format", "aisle")
	v.SetDefault("resolver.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Kroger.ClientID == "" {
		return fmt.Errorf("kroger client id must not be empty")
	}

	if config.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got: %d", config.Retry.MaxAttempts)
	}

	if f := config.Resolver.DefaultFormat; f != "aisle" && f != "category" {
		return fmt.Errorf("default format must be 'aisle' or 'category', got: %s", f)
	}

	return nil
}
