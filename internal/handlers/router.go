package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"medbot/internal/middleware"
	"medbot/internal/service"
	"medbot/pkg/logger"
)

type RouterConfig struct {
	Debug          bool
	FrontendURL    string
	RateLimitRPS   int
	RateLimitBurst int
}

type Dependencies struct {
	Resolver   service.Resolver
	Accounting service.AccountingService
	Export     service.DrugExportService
	CacheAdmin service.CacheAdminService
	RedisStats StatsFunc
	Workers    map[string]bool
	Scheduler  Scheduler
	Gatherer   prometheus.Gatherer
	Log        *logger.Logger
}

func NewRouter(cfg RouterConfig, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))

	origins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" && cfg.FrontendURL != origins[0] {
		origins = append(origins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if !cfg.Debug && cfg.RateLimitRPS > 0 {
		limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		r.Use(middleware.IPRateLimitMiddleware(limiter, deps.Log))
	}

	drugs := NewDrugHandler(deps.Resolver, deps.Accounting, deps.Export, deps.CacheAdmin)
	recalls := NewRecallHandler(deps.Resolver)
	callers := NewCallerHandler(deps.Accounting, deps.Log)
	system := NewSystemHandler(deps.CacheAdmin, deps.Accounting, deps.RedisStats, deps.Workers, deps.Scheduler)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api/v1")

	api.GET("/drugs", drugs.Search)
	api.GET("/drugs/cached", drugs.Cached)
	api.GET("/drugs/export", drugs.Export)
	api.GET("/drugs/:id", drugs.Get)
	api.GET("/recalls", recalls.Search)

	api.POST("/callers", callers.Register)
	api.GET("/callers/:id/stats", callers.Stats)

	api.GET("/health", system.Health)
	api.GET("/system/stats", system.Stats)

	if cfg.Debug {
		api.POST("/admin/purge", system.Purge)
	}

	return r
}
