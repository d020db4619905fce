package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/artifacts"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/cache"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/catalog"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/config"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/export"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/httpapi"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/images"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/source"
)

// App holds all application dependencies
type App struct {
	Config     *config.Config
	Logger     *logging.Logger
	Cache      cache.Cache
	CatalogSvc *catalog.Service
	HTTPServer *httpapi.Server
}

// New creates and initializes a new App instance
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Logger = logging.New(logging.ParseLevel(cfg.Logging.Level))
	app.Cache = app.initCache()

	loader, err := app.initLoader()
	if err != nil {
		return nil, err
	}
	app.CatalogSvc = catalog.NewService(loader, app.Logger)

	resolver := images.NewResolver(
		&http.Client{Timeout: cfg.Images.FetchTimeout},
		app.Cache,
		app.Logger,
	)

	spreadsheet := export.NewSpreadsheetExporter(app.Logger)
	document := export.NewDocumentExporter(resolver, app.Logger)

	store, err := app.initArtifacts()
	if err != nil {
		return nil, err
	}

	metrics := httpapi.NewMetrics()
	app.HTTPServer = httpapi.New(app.CatalogSvc, spreadsheet, document, store, metrics, cfg.Export.Brand, app.Logger)

	return app, nil
}

// Run loads the catalog and serves HTTP until the context is canceled
func (a *App) Run(ctx context.Context) error {
	if err := a.CatalogSvc.Load(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.HTTPServer.Start(a.Config.Server.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		a.Logger.Info("Shutting down")
		return a.HTTPServer.Shutdown(context.Background())
	}
}

func (a *App) initCache() cache.Cache {
	cfg := a.Config.Cache
	if cfg.Backend == "redis" {
		redisCache, err := cache.NewRedis(cache.RedisConfig{Addr: cfg.RedisAddr}, cfg.TTL)
		if err == nil {
			a.Logger.Info("Using Redis image cache", logging.WithField("addr", cfg.RedisAddr))
			return redisCache
		}
		a.Logger.Error("Failed to connect to Redis, falling back to memory cache",
			logging.WithField("error", err.Error()))
	}
	return cache.NewMemory(cfg.TTL)
}

func (a *App) initLoader() (source.Loader, error) {
	cfg := a.Config.Source
	switch cfg.Kind {
	case "http":
		return source.NewHTTPLoader(cfg.URL, nil), nil
	case "postgres":
		return source.NewPostgresLoader(cfg.DSN, cfg.Table)
	case "file":
		return source.NewFileLoader(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

func (a *App) initArtifacts() (artifacts.Store, error) {
	cfg := a.Config.Artifacts
	switch cfg.Backend {
	case "local":
		return artifacts.NewLocalStore(cfg.LocalDir)
	case "s3":
		return artifacts.NewS3Store(context.Background(), artifacts.S3Config{
			Region:   cfg.S3Region,
			Bucket:   cfg.S3Bucket,
			Prefix:   cfg.S3Prefix,
			Endpoint: cfg.S3Endpoint,
		})
	default:
		return artifacts.NopStore{}, nil
	}
}
