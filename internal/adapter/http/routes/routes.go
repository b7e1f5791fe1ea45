package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "vendor_listing/docs" // This will be auto-generated
	"vendor_listing/internal/adapter/http/handlers"
	"vendor_listing/internal/adapter/http/validation"
	"vendor_listing/internal/adapter/persistence/repository"
	"vendor_listing/internal/adapter/persistence/session"
	"vendor_listing/internal/infrastructure/config"
	"vendor_listing/internal/infrastructure/database"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service against DynamoDB and blocks serving HTTP.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger = logging.OrNop(logger)
	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	profileRepo := repository.NewProfileDynamoRepository(ddb, cfg.DynamoDB.ProfilesTable)
	sessions := session.NewMemoryStore(cfg.Wizard.SessionTTL)

	translator, err := validation.RegisterGin()
	if err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	wizardUseCase := usecase.NewProfileWizardUseCase(profileRepo, sessions, logger)
	reviewUseCase := usecase.NewProfileReviewUseCase(profileRepo, logger)

	router := NewRouter(logger,
		handlers.NewProfileWizardHandler(wizardUseCase, translator, logger),
		handlers.NewProfileReviewHandler(reviewUseCase, logger),
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logger.Info("[http] listening", zap.String("addr", addr), zap.String("profiles_table", cfg.DynamoDB.ProfilesTable))
	srv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("[http] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(logger *zap.Logger, wizardHandler *handlers.ProfileWizardHandler, reviewHandler *handlers.ProfileReviewHandler) *gin.Engine {
	logger = logging.OrNop(logger)
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWizardRoutes(v1, wizardHandler)
	addProfileRoutes(v1, reviewHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("[http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
