package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aislefinder/backend/config"
	"github.com/aislefinder/backend/internal/infrastructure/kroger"
	"github.com/aislefinder/backend/internal/retry"
	"github.com/aislefinder/backend/internal/usecase"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aislefinder",
	Short: "Turn a grocery list into a shopping route.",
	Long: `aislefinder resolves a free-text grocery list against the Kroger
product catalog and prints the items grouped by aisle, in the order
you would walk the store.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// loadConfig reads configuration and applies the loglevel flag
func loadConfig() *config.Config {
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	level, err := log.ParseLevel(levelString)
	if err != nil {
		log.Fatalf("Bad log level %q", levelString)
	}
	log.SetLevel(level)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// newCatalog wires the token provider and catalog client from config
func newCatalog(cfg *config.Config) *kroger.Client {
	retryPolicy := retry.Policy{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BackoffFactor: cfg.Retry.BackoffFactor,
	}

	tokens := kroger.NewTokenProvider(cfg.Kroger.ClientID, cfg.Kroger.ClientSecret, cfg.Kroger.AuthURL)
	tokens.SetRetryPolicy(retryPolicy)

	catalog := kroger.NewClient(cfg.Kroger.BaseURL, tokens)
	catalog.SetRetryPolicy(retryPolicy)

	if log.IsLevelEnabled(log.DebugLevel) {
		tokens.SetDebug(true)
		catalog.SetDebug(true)
	}
	return catalog
}

// newResolver wires the product resolver on top of the catalog client
func newResolver(cfg *config.Config, catalog *kroger.Client) *usecase.ProductResolver {
	return usecase.NewProductResolver(catalog, usecase.ResolverConfig{
		LocationID:         cfg.Kroger.LocationID,
		EnableDebugLogging: log.IsLevelEnabled(log.DebugLevel),
	})
}
