package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-finder/internal/api/handlers/health"
	searchHandler "recipe-finder/internal/api/handlers/search"
	"recipe-finder/internal/api/middleware"
	"recipe-finder/internal/core/ingredient"
	"recipe-finder/internal/core/match"
	coresearch "recipe-finder/internal/core/search"
	"recipe-finder/internal/core/source/foodsafety"
	"recipe-finder/internal/core/source/spoonacular"
	"recipe-finder/internal/core/translate"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 요청 타임아웃
	timeoutDuration = 60 * time.Second
	// 요청 본문 크기 제한 (1MB)
	maxBodySize = 1 << 20
)

// SetupRouter 라우터 설정
func SetupRouter(cfg *config.Config, cacheManager *translate.CacheManager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 기본 미들웨어
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 설정
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("detail_workers", cfg.Spoonacular.DetailWorkers),
		zap.Duration("timeout", timeoutDuration),
	)

	// 번역 서비스 초기화
	redisStore, err := translate.NewRedisStore(&cfg.Cache)
	if err != nil {
		common.LogError("Failed to initialize redis store", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize redis store: %w", err)
	}
	translator := translate.NewService(cfg, cacheManager, redisStore)
	if translator == nil {
		common.LogError("Failed to initialize translate service")
		return nil, fmt.Errorf("failed to initialize translate service")
	}

	// 매칭 엔진 초기화
	normalizer := ingredient.NewNormalizer(nil)
	matcher := ingredient.NewMatcher(normalizer)
	scorer := match.NewScorer(matcher)

	// 소스 어댑터 초기화
	lexicon := ingredient.NewLexicon()
	international := spoonacular.NewClient(cfg, lexicon)
	domestic := foodsafety.NewClient(cfg)
	if international == nil || domestic == nil {
		common.LogError("Failed to initialize source adapters")
		return nil, fmt.Errorf("failed to initialize source adapters")
	}

	searchSvc := coresearch.NewService(international, domestic, translator)

	common.LogInfo("Recipe services initialized successfully",
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.String("environment", cfg.App.Env),
	)

	// 전역 미들웨어: 타임아웃과 컨텍스트 주입
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("translate_cache", cacheManager)
		c.Set("search_service", searchSvc)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 헬스 체크 라우트
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 라우트 그룹
	api := router.Group("/api/v1")
	{
		handler := searchHandler.NewHandler(searchSvc, scorer)

		recipeGroup := api.Group("/recipe")
		{
			// 재료로 레시피 검색 (원본 결과)
			recipeGroup.POST("/search", handler.HandleSearch)

			// 검색 + 매칭률 + 정렬 + 페이지네이션
			recipeGroup.POST("/match", handler.HandleMatch)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
