package api

import (
	"net/http"
	"time"

	aiHandler "recipe-suggester/internal/api/handlers"
	"recipe-suggester/internal/api/handlers/health"
	recipeHandler "recipe-suggester/internal/api/handlers/recipe"
	"recipe-suggester/internal/api/middleware"
	"recipe-suggester/internal/core/ai/openai"
	"recipe-suggester/internal/core/ai/service"
	recipeService "recipe-suggester/internal/core/recipe"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
	"recipe-suggester/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
//
// aiService 為 nil 時以設定中的 completion API 建立；關閉由呼叫端負責。
func SetupRouter(cfg *config.Config, aiService *service.Service) *gin.Engine {
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
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	if aiService == nil {
		aiService = service.NewService(cfg.OpenAI, openai.NewClient(cfg.OpenAI))
	}
	composer := recipeService.NewService(nil)

	common.LogInfo("Services initialized",
		zap.String("model", aiService.Model()),
		zap.Bool("ai_enabled", cfg.OpenAI.HasCredential()),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	api := router.Group("/api")
	{
		recipeHandlerInstance := recipeHandler.NewHandler(composer)
		api.POST("/compose", recipeHandlerInstance.HandleCompose)

		// 其他方法由處理器回 405
		aiHandlerInstance := aiHandler.NewAIHandler(aiService)
		api.Any("/improve", aiHandlerInstance.Improve)
	}

	// 頁面
	index := web.IndexHTML()
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	router.StaticFS("/static", web.Static())

	common.LogInfo("Router setup completed successfully",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	return router
}
