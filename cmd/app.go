package main

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"medbot/internal/cache"
	"medbot/internal/clients"
	"medbot/internal/config"
	"medbot/internal/repository"
	"medbot/internal/service"
	"medbot/pkg/database"
	"medbot/pkg/logger"
	"medbot/pkg/metrics"
	"medbot/pkg/redis"
)

// app holds the process-wide handles. Everything is built once here and
// passed down explicitly.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *gorm.DB
	redis    *goredis.Client
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	drugs      repository.DrugRepository
	users      repository.UserRepository
	hot        cache.CacheRepository
	resolver   service.Resolver
	accounting service.AccountingService
	export     service.DrugExportService
	admin      service.CacheAdminService
}

type appOptions struct {
	withHotCache bool
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:   cfg.App.LogLevel,
		Console: cfg.App.Debug,
	})

	db, err := database.Connect(database.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.DBName,
		SSLMode:  cfg.DB.SSLMode,
		Path:     cfg.DB.Path,
		Debug:    cfg.App.Debug,
	})
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New("medbot", registry)

	a := &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		registry: registry,
		metrics:  m,
		drugs:    repository.NewDrugRepository(db, cfg.CacheTTL()),
		users:    repository.NewUserRepository(db),
	}

	if opts.withHotCache {
		a.hot = a.connectHotCache()
	}

	client := clients.NewFDAClient(clients.FDAConfig{
		BaseURL:       cfg.FDA.BaseURL,
		APIKey:        cfg.FDA.APIKey,
		UserAgent:     cfg.FDA.UserAgent,
		Timeout:       cfg.FDA.Timeout,
		DrugLimit:     cfg.FDA.DrugLimit,
		RecallLimit:   cfg.FDA.RecallLimit,
		RatePerSecond: cfg.FDA.RatePerSecond,
		Burst:         cfg.FDA.Burst,
	}, log, m)

	a.resolver = service.NewResolver(a.drugs, a.hot, client, service.ResolverConfig{
		RecentRecalls: cfg.FDA.RecentRecalls,
		HotTTL:        cfg.Cache.HotTTL,
	}, log, m)
	a.accounting = service.NewAccountingService(a.users, log, m)
	a.export = service.NewDrugExportService(a.drugs)
	a.admin = service.NewCacheAdminService(a.drugs, a.hot, log)

	return a, nil
}

// connectHotCache prefers Redis and falls back to the in-process cache when
// Redis is disabled or unreachable.
func (a *app) connectHotCache() cache.CacheRepository {
	if a.cfg.Redis.Enabled {
		client, err := redis.Connect(redis.Config{
			Host:     a.cfg.Redis.Host,
			Port:     a.cfg.Redis.Port,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		}, a.log)
		if err == nil {
			a.redis = client
			return cache.NewRedisRepository(client)
		}
		a.log.Warn(err, "redis unavailable, using in-process hot cache")
	}
	return cache.NewMemoryRepository(a.cfg.Cache.HotTTL, 2*a.cfg.Cache.HotTTL)
}

func (a *app) redisStats() func(ctx context.Context) (map[string]string, error) {
	if a.redis == nil {
		return nil
	}
	return func(ctx context.Context) (map[string]string, error) {
		return redis.GetStats(ctx, a.redis)
	}
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn(err, "failed to close redis client")
		}
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Warn(err, "failed to close database")
		}
	}
}

func withApp(opts appOptions, fn func(a *app) error) error {
	a, err := newApp(opts)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer a.Close()
	return fn(a)
}
