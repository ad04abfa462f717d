// Package bootstrap provides dependency initialization for the job board API.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/config"
	"github.com/maauso/guardjobs-api/internal/employer"
	"github.com/maauso/guardjobs-api/internal/storage"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	Catalog *catalog.Store
	// Refresher is nil when scheduled reloads are disabled.
	Refresher    *catalog.Refresher
	Submitter    *submission.Simulator
	Applications *application.Service
	Employer     *employer.Service
}

// NewDependencies creates and initializes all dependencies for the application.
// The catalog is loaded once here; a catalog that fails to load is fatal.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	// Initialize catalog source
	source, key, err := initCatalogSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	initial, err := catalog.Load(ctx, source, key)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store := catalog.NewStore(initial, source, key, logger)
	logger.Info("catalog loaded",
		slog.String("key", key),
		slog.Int("jobs", initial.Len()),
	)

	var refresher *catalog.Refresher
	if cfg.RefreshEnabled() {
		refresher = catalog.NewRefresher(store, cfg.CatalogRefresh, logger)
	}

	// Initialize submission simulator
	sim := submission.NewSimulator(logger, submission.WithDelay(cfg.SubmitDelay))

	// Initialize services
	apps := application.NewService(application.NewSeededRepository(), store, sim, logger)
	emp := employer.NewService(store, apps, sim, logger)

	return &Dependencies{
		Catalog:      store,
		Refresher:    refresher,
		Submitter:    sim,
		Applications: apps,
		Employer:     emp,
	}, nil
}

// initCatalogSource picks where the catalog document is read from:
// S3 when configured, else CATALOG_PATH on disk, else the compiled-in seed.
func initCatalogSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, string, error) {
	if cfg.S3Enabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.CatalogS3Bucket,
			Region:          cfg.CatalogS3Region,
			Endpoint:        cfg.CatalogS3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(ctx, s3Cfg)
		if err != nil {
			return nil, "", fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("S3 catalog source configured",
			slog.String("bucket", cfg.CatalogS3Bucket),
			slog.String("region", cfg.CatalogS3Region),
			slog.String("key", cfg.CatalogS3Key),
		)
		return s3Store, cfg.CatalogS3Key, nil
	}

	if cfg.CatalogPath != "" {
		localStore, err := storage.NewLocalStorage(filepath.Dir(cfg.CatalogPath))
		if err != nil {
			return nil, "", fmt.Errorf("create local storage: %w", err)
		}
		logger.Info("local catalog source configured",
			slog.String("path", cfg.CatalogPath),
		)
		return localStore, filepath.Base(cfg.CatalogPath), nil
	}

	logger.Info("using compiled-in catalog")
	return storage.NewFSStorage(catalog.Seed), catalog.SeedKey, nil
}
