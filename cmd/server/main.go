package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/aislefinder/backend/config"
	httpDelivery "github.com/aislefinder/backend/internal/delivery/http"
	"github.com/aislefinder/backend/internal/infrastructure/kroger"
	"github.com/aislefinder/backend/internal/retry"
	"github.com/aislefinder/backend/internal/usecase"
)

func main() {
	// Load .env if present; real environments rely on actual env vars
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting AisleFinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store location: %s", cfg.Kroger.LocationID)

	retryPolicy := retry.Policy{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BackoffFactor: cfg.Retry.BackoffFactor,
	}

	// Initialize infrastructure dependencies
	tokens := kroger.NewTokenProvider(cfg.Kroger.ClientID, cfg.Kroger.ClientSecret, cfg.Kroger.AuthURL)
	tokens.SetRetryPolicy(retryPolicy)

	catalog := kroger.NewClient(cfg.Kroger.BaseURL, tokens)
	catalog.SetRetryPolicy(retryPolicy)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		tokens.SetDebug(true)
		catalog.SetDebug(true)
		log.Printf("Kroger client debug mode enabled")
	}

	if cfg.Kroger.ClientSecret != "" {
		log.Printf("Kroger API configured: %s", cfg.Kroger.BaseURL)
	} else {
		log.Printf("WARNING: Kroger API configured: %s (client secret NOT SET - catalog calls will fail!)", cfg.Kroger.BaseURL)
	}

	// Initialize usecase layer
	resolver := usecase.NewProductResolver(catalog, usecase.ResolverConfig{
		LocationID:         cfg.Kroger.LocationID,
		EnableDebugLogging: cfg.Resolver.EnableDebugLogging,
	})

	defaultFormat, err := usecase.ParseRouteMode(cfg.Resolver.DefaultFormat)
	if err != nil {
		log.Fatalf("Invalid default output format: %v", err)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(resolver, catalog, defaultFormat)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
