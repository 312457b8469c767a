package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/bnema/mediahub/config"
	HTTPAdapter "github.com/bnema/mediahub/internal/adapter/http"
	sqlitestore "github.com/bnema/mediahub/internal/adapter/storage/sqlite"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/infrastructure/metrics"
	"github.com/bnema/mediahub/internal/service"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the ingest workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *sqlitestore.Store) error {
				return serve(cmd.Context(), cfg, store)
			})
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, store *sqlitestore.Store) error {
	logger.Info.Printf("starting mediahub on port %d, data=%s", cfg.Port, cfg.DataDir)

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		gatherer = reg
	}

	ingest, err := newIngestCoordinator(cfg, m)
	if err != nil {
		return err
	}

	jobQueue := sqlitestore.NewJobQueue(store)
	eventBus := service.NewEventBus()
	uploads := service.NewUploadService(store, jobQueue, ingest, eventBus, cfg.DataDir, cfg.PublicBaseURL)
	catalog := service.NewCatalogService(store, uploads)

	server := HTTPAdapter.NewServer(HTTPAdapter.Deps{
		Auth:           service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL()),
		Catalog:        catalog,
		Sliders:        service.NewSliderService(store, store),
		Engagement:     service.NewEngagementService(store, store),
		Uploads:        uploads,
		Jobs:           jobQueue,
		Events:         eventBus,
		Metrics:        m,
		Gatherer:       gatherer,
		CSRFSecret:     cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxVideoBytes:  cfg.MaxVideoUploadBytes(),
		MaxImageBytes:  cfg.MaxImageUploadBytes(),
		BehindProxy:    cfg.BehindProxy,
	})
	defer server.Close()

	// Cancelling the worker context aborts in-flight ingests.
	workerCtx, workerCancel := context.WithCancel(context.WithoutCancel(ctx))
	defer workerCancel()

	workerPool := service.NewWorkerPool(jobQueue, uploads, cfg.Workers)
	workerPool.Start(workerCtx)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info.Printf("server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		workerCancel()
		workerPool.Wait()
		return err
	case <-ctx.Done():
		logger.Info.Printf("shutdown requested")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("http shutdown error: %v", err)
	}

	workerCancel()
	workerPool.Wait()
	logger.Info.Printf("shutdown complete")
	return nil
}
