// Package main is the entry point for Crown Quest.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/crownquest/internal/game"
	"github.com/samdwyer/crownquest/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CROWNQUEST_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	path := os.Getenv(game.EnvConfig)
	if path == "" {
		path = game.DefaultConfigFile
	}
	cfg, err := game.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to the game once it starts
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// Set up OTEL environment variables from our .env variables
	enabled := setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Enabled: enabled})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It reports whether an API key was found, which turns exporting on.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_CROWNQUEST_API_KEY")
	if apiKey == "" {
		return false
	}

	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	dataset := os.Getenv("HONEYCOMB_CROWNQUEST_DATASET")
	if dataset == "" {
		dataset = "crownquest" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
