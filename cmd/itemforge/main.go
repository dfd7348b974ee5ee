package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/database"
	"github.com/osse101/itemforge/internal/database/postgres"
	"github.com/osse101/itemforge/internal/handler"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/scheduler"
	"github.com/osse101/itemforge/internal/server"
	"github.com/osse101/itemforge/internal/validation"
	"github.com/osse101/itemforge/internal/worker"
)

const (
	shutdownTimeout    = 10 * time.Second
	assetClientTimeout = 10 * time.Second
	jobQueueSize       = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		logger.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	handler.InitValidator()

	assets := newAssetSource(cfg)
	loader := catalog.NewLoader(assets, item.NewFactory(), schemaOptions(cfg)...)
	cache := catalog.NewCache(loader, cfg.CacheSize, cfg.CacheTTL)

	deps := server.Deps{Assets: assets, Catalog: cache}

	var syncer *catalog.Syncer
	if cfg.PersistenceEnabled() {
		db, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			return err
		}

		syncer = catalog.NewSyncer(loader, postgres.NewItemRepository(db))
		deps.DB = db
		deps.Syncer = syncer
	}

	// jobs stop before the database closes
	pool := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	pool.Start(ctx)
	defer pool.Stop()
	pool.Enqueue(worker.NewWarmCacheJob(cache))

	sched := scheduler.New(pool)
	defer sched.Stop()
	if syncer != nil {
		sched.Schedule(cfg.SyncInterval, worker.NewSyncJob(syncer))
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, deps)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// newAssetSource reads from the asset server when one is configured and from
// the local asset directory otherwise.
func newAssetSource(cfg *config.Config) handler.AssetSource {
	if cfg.AssetServerURL != "" {
		logger.Info("Reading items from asset server", "url", cfg.AssetServerURL)
		return catalog.NewHTTPSource(cfg.AssetServerURL, &http.Client{Timeout: assetClientTimeout})
	}
	logger.Info("Reading items from asset directory", "dir", cfg.AssetsDir)
	return catalog.NewDirSource(cfg.AssetsDir)
}

// schemaOptions enables record validation when the schema file can be found.
func schemaOptions(cfg *config.Config) []catalog.LoaderOption {
	path, err := validation.FindSchema(cfg.ItemSchemaPath)
	if err != nil {
		logger.Warn("Item schema not found, records will not be validated", "error", err)
		return nil
	}
	return []catalog.LoaderOption{catalog.WithSchema(validation.NewSchemaValidator(), path)}
}
