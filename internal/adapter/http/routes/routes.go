package routes

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "construction_estimator/docs"
	"construction_estimator/internal/adapter/http/handlers"
	"construction_estimator/internal/adapter/persistence/repository"
	"construction_estimator/internal/config"
	"construction_estimator/internal/infrastructure/database"
	"construction_estimator/internal/infrastructure/logging"
	"construction_estimator/internal/infrastructure/prediction"
	"construction_estimator/internal/pricing"
	"construction_estimator/internal/usecase"
	"construction_estimator/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type dependencies struct {
	estimationHandler *handlers.EstimationHandler
	historyHandler    *handlers.HistoryHandler
	pricingHandler    *handlers.PricingHandler
	close             func()
}

// Run will start the server
func Run(cfg *config.Config) error {
	logger := logging.New(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(cfg.Server.GinMode)

	deps, err := buildDependencies(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	router := newRouter(cfg, deps)

	logger.Info("[server] starting", "addr", cfg.Addr(), "history_backend", cfg.History.Backend, "remote_enabled", cfg.Prediction.Endpoint != "")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config, deps *dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg.Server)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, deps.estimationHandler)
	addHistoryRoutes(v1, deps.historyHandler)
	addPricingRoutes(v1, deps.pricingHandler)
	return router
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	catalog, err := pricing.Load(cfg.Pricing.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load pricing catalog: %w", err)
	}
	logger.Info("[server] pricing catalog loaded", "categories", len(catalog.Categories()), "items", catalog.TotalItemCount())

	historyRepo, closeRepo, err := newHistoryRepository(ctx, cfg.History)
	if err != nil {
		return nil, err
	}

	var remote interfaces.IRemoteEstimator
	if cfg.Prediction.Endpoint != "" {
		remote = prediction.NewRemoteEstimator(&cfg.Prediction, logger)
	} else {
		logger.Warn("[server] PREDICTION_ENDPOINT not set, every estimate is calculated locally")
	}

	estimationUseCase := usecase.NewEstimationUseCase(remote, usecase.NewLocalEstimator(cfg.Prediction.ModelVersion), logger)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo)
	pricingUseCase := usecase.NewPricingUseCase(catalog)

	return &dependencies{
		estimationHandler: handlers.NewEstimationHandler(estimationUseCase, historyUseCase),
		historyHandler:    handlers.NewHistoryHandler(historyUseCase),
		pricingHandler:    handlers.NewPricingHandler(pricingUseCase),
		close:             closeRepo,
	}, nil
}

func newHistoryRepository(ctx context.Context, cfg config.HistoryConfig) (interfaces.IHistoryRepository, func(), error) {
	switch cfg.Backend {
	case config.HistoryBackendMemory:
		return repository.NewHistoryMemoryRepository(), func() {}, nil
	case config.HistoryBackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewHistorySQLiteRepository(db), func() { _ = db.Close() }, nil
	case config.HistoryBackendDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewHistoryDynamoRepository(ddb, cfg.UsersTable), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}

func setMiddlewares(router *gin.Engine, cfg config.ServerConfig) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("[server] recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	origins := config.SplitList(cfg.AllowedOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	if methods := config.SplitList(cfg.AllowedMethods); len(methods) > 0 {
		corsConfig.AllowMethods = methods
	}
	if headers := config.SplitList(cfg.AllowedHeaders); len(headers) > 0 {
		corsConfig.AllowHeaders = headers
	}
	router.Use(cors.New(corsConfig))
}
