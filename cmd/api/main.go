package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "vendor_listing/docs"
	"vendor_listing/internal/adapter/http/routes"
	"vendor_listing/internal/infrastructure/config"
	"vendor_listing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Vendor Listing API
// @version         1.0
// @description     Guided profile completion wizard and review queue for vendor listings, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
