package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aryaman-sowilo/stock-price-scraper/cache"
	"github.com/aryaman-sowilo/stock-price-scraper/client"
	"github.com/aryaman-sowilo/stock-price-scraper/config"
	"github.com/aryaman-sowilo/stock-price-scraper/controller"
	"github.com/aryaman-sowilo/stock-price-scraper/middleware"
	"github.com/aryaman-sowilo/stock-price-scraper/scraper"
	"github.com/aryaman-sowilo/stock-price-scraper/service"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RateLimiter(cfg))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	googleClient := client.NewGoogleFinanceClient(time.Duration(cfg.Config.FetchTimeoutSeconds) * time.Second)

	// --- 2. Core components ---
	quoteCache := cache.NewQuoteCache(cfg.Config.CacheCapacity, time.Duration(cfg.Config.CacheTTLSeconds)*time.Second)
	quoteScraper := scraper.New(scraper.Limits{
		PatternMin:  cfg.Config.PatternPriceMin,
		PatternMax:  cfg.Config.PatternPriceMax,
		FreeTextMin: cfg.Config.FreeTextPriceMin,
		FreeTextMax: cfg.Config.FreeTextPriceMax,
	})

	// --- 3. Services (Dependency Injection) ---
	quoteSvc := service.NewQuoteService(googleClient, quoteCache, quoteScraper)

	// --- 4. Routes & Controllers ---
	controller.NewQuoteController(quoteSvc).RegisterRoutes(r.Group("/"))

	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
	}

	return r
}
