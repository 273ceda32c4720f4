package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"marblecraft/internal/adapter/http/routes"
	"marblecraft/internal/adapter/persistence/repository"
	"marblecraft/internal/infrastructure/config"
	"marblecraft/internal/infrastructure/database"
	"marblecraft/internal/infrastructure/logging"
	"marblecraft/internal/usecase"
	"marblecraft/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Marblecraft Quote API
// @version         1.0
// @description     Marble installation catalog and instant price quotes.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

const catalogLoadTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	src, err := newCatalogSource(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalw("[main] catalog source not configured", "error", err)
	}
	store, err := usecase.LoadCatalog(ctx, src)
	cancel()
	if err != nil {
		log.Fatalw("[main] failed to load catalog", "source", cfg.CatalogSource, "error", err)
	}
	log.Infow("[main] catalog loaded", "source", cfg.CatalogSource,
		"services", len(store.Services()), "designs", len(store.Designs()))

	if err := routes.Run(cfg, log, store); err != nil {
		log.Fatalw("[main] server stopped", "error", err)
	}
}

func newCatalogSource(ctx context.Context, cfg config.Config) (interfaces.ICatalogSource, error) {
	if cfg.CatalogSource != config.CatalogSourceDynamoDB {
		return repository.NewStaticCatalogSource(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	return repository.NewCatalogDynamoSource(ddb, cfg.AWS.ServicesTable, cfg.AWS.DesignsTable), nil
}
