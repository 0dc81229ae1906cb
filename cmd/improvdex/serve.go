package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/config"
	"github.com/kailas-cloud/improvdex/internal/db"
	"github.com/kailas-cloud/improvdex/internal/db/memory"
	dbRedis "github.com/kailas-cloud/improvdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/improvdex/internal/logger"
	"github.com/kailas-cloud/improvdex/internal/metrics"
	catalogrepo "github.com/kailas-cloud/improvdex/internal/repository/catalog"
	preferencerepo "github.com/kailas-cloud/improvdex/internal/repository/preference"
	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
	catalogus "github.com/kailas-cloud/improvdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/improvdex/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/improvdex/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/improvdex/internal/usecase/query"
	"github.com/kailas-cloud/improvdex/internal/version"
)

func newServeCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts the improvdex HTTP API. Configuration is read from config/<env>.yaml,
where env comes from --env or the ENV variable (default "local").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env == "" {
				env = config.GetEnv()
			}
			return runServe(cmd.Context(), env)
		},
	}
	cmd.Flags().StringVar(&env, "env", "", "configuration environment (local, dev, prod)")
	return cmd
}

func runServe(parent context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, logpkg.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting improvdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Key-value store ready", zap.String("driver", cfg.Cache.Driver))

	// Register catalog metrics explicitly (no init())
	metrics.Register()
	recorder := metrics.Recorder{}

	// Catalog chain: source -> cache -> loader -> reloader -> holder
	loader := catalogrepo.NewLoader(buildSource(cfg.Catalog, store, logger), catalogrepo.Format(cfg.Catalog.Format))
	holder := catalogus.NewHolder(nil)
	reloader := catalogus.NewReloader(loader, holder, recorder, logger)

	if _, err := reloader.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	if cfg.Catalog.Watch {
		watcher := catalogus.NewWatcher(
			cfg.Catalog.Source, reloader,
			time.Duration(cfg.Catalog.DebounceMS)*time.Millisecond, logger,
		)
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("start catalog watcher: %w", err)
		}
		defer watcher.Stop()
	}

	// Use case services
	querySvc := queryuc.New(holder, recorder)
	prefSvc := preferenceuc.New(preferencerepo.New(
		store, time.Duration(cfg.Preferences.TTLDays)*24*time.Hour,
	))
	// The in-memory store needs no health check; pass a nil interface, not a typed nil.
	var pinger healthuc.CachePinger
	if cfg.Cache.Driver != config.DriverNone {
		pinger = store
	}
	healthSvc := healthuc.New(holder, pinger)

	server := chiTransport.NewServer(querySvc, prefSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", chiTransport.ClientIDHeader},
			ExposedHeaders:   []string{"X-Request-ID", chiTransport.ClientIDHeader},
			AllowCredentials: true,
			MaxAge:           cfg.CORS.MaxAgeSec,
		}))
	}
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys, cfg.Auth.Scope == config.AuthScopeWrites))
	r.Use(chiTransport.ClientIDMiddleware(
		cfg.Preferences.CookieName, time.Duration(cfg.Preferences.TTLDays)*24*time.Hour,
	))
	r.Use(metrics.Middleware())
	chiTransport.HandlerWithOptions(server, chiTransport.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.BindErrorHandler,
	})
	if cfg.HTTP.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.HTTP.StaticDir)))
		logger.Info("Serving browser client", zap.String("dir", cfg.HTTP.StaticDir))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// openStore creates the key-value store for the configured driver and waits until it answers.
func openStore(ctx context.Context, cfg config.CacheConfig) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverNone:
		return memory.NewStore(), nil
	case config.DriverValkey, config.DriverRedis:
		// Valkey speaks RESP, so both drivers share the rueidis client.
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create key-value store: %w", err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("key-value store not ready: %w", err)
	}
	return store, nil
}

// buildSource assembles the document source: file or HTTP, optionally cached.
func buildSource(cfg config.CatalogConfig, store db.Store, logger *zap.Logger) catalogrepo.Source {
	var src catalogrepo.Source
	if cfg.IsRemote() {
		src = catalogrepo.NewHTTPSource(cfg.Source, nil)
	} else {
		src = catalogrepo.NewFileSource(cfg.Source)
	}

	if cfg.CacheTTLSec > 0 {
		src = catalogrepo.NewCachedSource(
			src, store, time.Duration(cfg.CacheTTLSec)*time.Second,
			metrics.CatalogCacheTotal, logger,
		)
	}
	return src
}
