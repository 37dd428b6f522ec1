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

	"github.com/aromax/storefront/config"
	httpDelivery "github.com/aromax/storefront/internal/delivery/http"
	"github.com/aromax/storefront/internal/domain"
	"github.com/aromax/storefront/internal/infrastructure/cache"
	"github.com/aromax/storefront/internal/infrastructure/catalog"
	"github.com/aromax/storefront/internal/infrastructure/remote"
	"github.com/aromax/storefront/internal/observability"
	"github.com/aromax/storefront/internal/usecase"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_type", cfg.Cache.Type).
		Dur("cache_ttl", cfg.Cache.TTL).
		Bool("search_debug", cfg.Search.Debug).
		Msg("starting Aromax storefront v1.0.0")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog
	catalogLogger := observability.Component(logger, "catalog")
	store := catalog.NewStore(buildCatalogSource(cfg, logger), catalogLogger)
	if _, err := store.Reload(ctx); err != nil {
		if cfg.Catalog.Source != config.SourceRemote {
			logger.Fatal().Err(err).Msg("failed to load catalog")
		}
		logger.Warn().Err(err).Msg("remote catalog unavailable at startup, serving empty catalog until next refresh")
	}

	if cfg.Catalog.Watch {
		watcher, err := catalog.NewWatcher(store, cfg.Catalog.Path, catalogLogger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to watch catalog file")
		}
		go watcher.Run(ctx)
	}
	if cfg.Catalog.Source == config.SourceRemote {
		go store.Poll(ctx, cfg.Catalog.RefreshInterval)
	}

	// Cache
	searchCache, closeCache := buildCache(ctx, cfg, logger)
	defer closeCache()

	// Usecase layer
	searchService := usecase.NewSearchService(
		store,
		searchCache,
		observability.Component(logger, "search"),
		usecase.SearchServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Search.Debug,
		},
	)

	handler := httpDelivery.NewHandler(
		searchService,
		usecase.NewAssistant(nil),
		usecase.NewDeliveryTracker(nil),
		store,
		observability.Component(logger, "http"),
	)
	router := httpDelivery.SetupRouter(cfg, handler, observability.Component(logger, "access"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildCatalogSource(cfg *config.Config, logger zerolog.Logger) domain.CatalogSource {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.NewFileSource(cfg.Catalog.Path)
	case config.SourceRemote:
		client := remote.NewClient(cfg.Catalog.APIKey, cfg.Catalog.URL, observability.Component(logger, "remote"))
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		if cfg.Catalog.APIKey == "" {
			logger.Warn().Str("url", cfg.Catalog.URL).Msg("remote catalog configured without an API key")
		}
		return client
	default:
		return catalog.NewEmbeddedSource()
	}
}

// buildCache returns the configured cache and a func that releases it.
// A nil repository disables result caching.
func buildCache(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (domain.CacheRepository, func()) {
	switch cfg.Cache.Type {
	case "none":
		return nil, func() {}
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL, "aromax:")
		if err == nil {
			return redisCache, func() { redisCache.Close() }
		}
		logger.Warn().Err(err).Msg("redis unavailable, falling back to memory cache")
	}

	memoryCache := cache.NewMemoryCache()
	return memoryCache, func() { memoryCache.Close() }
}
