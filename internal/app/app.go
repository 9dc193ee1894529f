package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nexus-exporter/internal/exporters"
	internalhttp "nexus-exporter/internal/http"
	"nexus-exporter/internal/logscans"
	"nexus-exporter/internal/models"
	"nexus-exporter/internal/renderers"
	"nexus-exporter/internal/shared/configs"
	"nexus-exporter/internal/shared/filestorages"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	scheduledExporter exporters.ScheduledExporter
	backgroundCtx     context.Context
	backgroundCancel  context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "nexus-exporter").
		Logger()

	// Initialize artifact store
	fileStorage, err := filestorages.NewFileStorage(config.Artifact.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewMetricsReportStore(fileStorage, config.Artifact.FileName)

	// Initialize export service
	defaultWindow, err := models.ParseWindow(config.Exporter.DefaultWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default window: %w", err)
	}
	enumerator := logscans.NewEnumerator(config.Exporter.LogDir, config.Exporter.ArchivePrefix, config.Exporter.LiveLogName)
	// Log timestamps carry no zone conversion; the host zone is the single
	// reference zone for cutoffs and hour buckets.
	scanner := logscans.NewScanner(time.Local)
	renderer := renderers.NewPrometheusRenderer()
	exportService := exporters.NewExportService(enumerator, scanner, renderer, exporters.ExportOptions{
		DefaultWindow: defaultWindow,
		FlagFile:      config.Exporter.FlagFile,
		ScanTimeout:   time.Duration(config.Exporter.ScanTimeout) * time.Second,
		Location:      time.Local,
	})

	// Initialize background refresher
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	scheduledExporter := exporters.NewScheduledExporter(
		exportService,
		reportStore,
		time.Duration(config.Artifact.RefreshInterval)*time.Second,
		schedulerLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(exportService, reportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		server:            server,
		scheduledExporter: scheduledExporter,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting nexus-exporter service on port %d (log_level=%s, log_dir=%s, default_window=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Exporter.LogDir,
			app.config.Exporter.DefaultWindow)

	// start background refresher
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.scheduledExporter.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background refresher
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background refresher cancelled")
	}

	// 3) Wait for background refresher to finish
	app.scheduledExporter.Stop()
	app.appLogger.Info().Msg("Background refresher stopped")

	return nil
}
