package routes

import (
	"fmt"

	_ "marblecraft/docs"
	"marblecraft/internal/adapter/http/dto/request"
	"marblecraft/internal/adapter/http/handlers"
	"marblecraft/internal/adapter/http/middleware"
	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/infrastructure/config"
	"marblecraft/internal/infrastructure/logging"
	"marblecraft/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config, log *logging.Logger, store *catalog.Store) error {
	router, err := NewRouter(cfg, log, store)
	if err != nil {
		return err
	}

	log.Infow("[http][routes] listening", "port", cfg.Port, "catalog_source", cfg.CatalogSource)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter wires middlewares, handlers and the swagger endpoint over store.
func NewRouter(cfg config.Config, log *logging.Logger, store *catalog.Store) (*gin.Engine, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, log, store)
	return router, nil
}

func getRoutes(router *gin.Engine, cfg config.Config, log *logging.Logger, store *catalog.Store) {
	catalogUseCase := usecase.NewCatalogUseCase(store)
	quoteUseCase := usecase.NewQuoteUseCase(store, cfg.BookingBaseURL, cfg.CalculatorBaseURL)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, log)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares(router *gin.Engine, log *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.Recovery(log))
}
