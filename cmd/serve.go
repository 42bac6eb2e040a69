package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"medbot/internal/handlers"
	"medbot/internal/worker"
	"medbot/pkg/database"
)

func newServeCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(appOptions{withHotCache: true}, func(a *app) error {
				return serve(cmd.Context(), a, !skipMigrate)
			})
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run schema migrations on startup")
	return cmd
}

func serve(ctx context.Context, a *app, migrate bool) error {
	cfg := a.cfg
	log := a.log

	if migrate {
		if err := database.Migrate(a.db); err != nil {
			return err
		}
	}

	scheduler := worker.NewScheduler(log)
	if cfg.Workers.SweepEnabled {
		scheduler.AddWorker(worker.NewCacheSweepWorker(a.admin, cfg.Workers.SweepInterval, cfg.Cache.PurgeAfter, log))
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Debug:          cfg.App.Debug,
		FrontendURL:    cfg.App.FrontendURL,
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, handlers.Dependencies{
		Resolver:   a.resolver,
		Accounting: a.accounting,
		Export:     a.export,
		CacheAdmin: a.admin,
		RedisStats: a.redisStats(),
		Workers:    map[string]bool{"cache_sweep": cfg.Workers.SweepEnabled},
		Scheduler:  scheduler,
		Gatherer:   a.registry,
		Log:        log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", server.Addr, "db_driver", cfg.DB.Driver, "hot_cache", a.hot.Backend())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server exited properly")
	return nil
}
