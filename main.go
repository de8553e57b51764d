package main

import (
	"log"

	"github.com/joho/godotenv"
	"sevdesk-mcp/cmd"
	"sevdesk-mcp/internal/config"
	"sevdesk-mcp/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Initialize logger from environment. Config validation (API token) is
	// deferred to the serve command so help/version work without credentials.
	logCfg := logger.DefaultConfig()
	if cfg, err := config.Load(); err == nil {
		logCfg = cfg.LoggerConfig()
	}
	if err := logger.Setup(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}
