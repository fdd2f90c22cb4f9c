package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/adapter/client"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/adapter/http/handler"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/adapter/http/middleware"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/adapter/http/web"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/adapter/repository/rediscache"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/service"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/infrastructure/config"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// The classifier is constructed once, on the first analysis
	provider := usecase.NewClassifierProvider(func() (service.Classifier, error) {
		hfClient := client.NewHFClient(
			cfg.HuggingFace.BaseURL,
			cfg.HuggingFace.Model,
			cfg.HuggingFace.Token,
			cfg.HuggingFace.Timeout,
		)
		logger.Info("Classifier constructed", zap.String("model", cfg.HuggingFace.Model))
		return client.NewHFClassifier(hfClient), nil
	})

	// Optional result cache
	var resultCache usecase.ResultCache
	if redisClient != nil && cfg.Cache.Enabled {
		resultCache = rediscache.NewAnalysisCache(redisClient, cfg.Cache.TTL)
	}

	// Initialize usecases
	analysisUC := usecase.NewAnalysisUsecase(provider, resultCache)

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisUC)
	healthHandler := handler.NewHealthHandler(redisClient, analysisUC)

	// Single page UI
	router.GET("/", func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
	})

	// Health endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analysis", analysisHandler.Analyze)
	}

	return router
}
