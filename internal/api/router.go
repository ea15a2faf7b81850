package api

import (
	"fmt"
	"time"

	"vinai-server/internal/api/handlers/actions"
	"vinai-server/internal/api/handlers/auth"
	"vinai-server/internal/api/handlers/health"
	"vinai-server/internal/api/middleware"
	"vinai-server/internal/core/profile"
	"vinai-server/internal/core/recommend"
	"vinai-server/internal/core/tour"
	"vinai-server/internal/infrastructure/cache"
	"vinai-server/internal/infrastructure/config"
	"vinai-server/internal/pkg/common"
	"vinai-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies 啟動時建立、由路由共用的依賴
type Dependencies struct {
	Store      *store.Store
	Vocabulary recommend.Vocabulary
	Dedup      cache.Store
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if deps.Dedup == nil {
		deps.Dedup = cache.NewMemoryStore()
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 服務
	profileSvc := profile.NewService(deps.Store, profile.NewBcryptHasher(cfg.Auth.BcryptCost), cfg.Auth.DemoPassword)
	recommendSvc := recommend.NewService(deps.Vocabulary, deps.Store.Dialect(), deps.Store)
	tourSvc := tour.NewService(
		deps.Store,
		tour.NewStaticMapProvider(cfg.Maps.GoogleAPIKey),
		tour.NewValleyImages(cfg.Maps.ValleyImages),
	)

	registry := actions.NewRegistry(actions.Services{
		Profile:   profileSvc,
		Recommend: recommendSvc,
		Tour:      tourSvc,
	})
	actionHandler := actions.NewHandler(registry)
	authHandler := auth.NewHandler(profileSvc)
	healthHandler := health.NewHandler(cfg.App.Version, deps.Store)

	// 健康檢查路由
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// 對話管理器 webhook
	dedup := middleware.Deduplication(deps.Dedup, cfg.DedupWindow)
	router.POST("/webhook", dedup, actionHandler.HandleWebhook)
	router.GET("/actions", actionHandler.HandleList)

	// 網頁前端使用的路徑
	router.POST("/public_register", dedup, authHandler.HandleRegister)
	router.POST("/public_login", authHandler.HandleLogin)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/register", dedup, authHandler.HandleRegister)
		authGroup.POST("/login", authHandler.HandleLogin)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Strings("actions", registry.Names()),
		zap.Bool("maps_enabled", cfg.Maps.HasMapsKey()),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
