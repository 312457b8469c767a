package main

import (
	"fmt"

	"github.com/bnema/mediahub/config"
	"github.com/bnema/mediahub/internal/adapter/converter/ffmpeg"
	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/metrics"
	"github.com/bnema/mediahub/internal/service"
)

// newIngestCoordinator builds the ffmpeg backed ingestion pipeline for the
// default ladder. m may be nil.
func newIngestCoordinator(cfg *config.Config, m *metrics.Metrics) (*service.IngestCoordinator, error) {
	orchestrator, err := service.NewOrchestrator(
		ffmpeg.NewEncoder(cfg.FFmpegPath),
		domain.DefaultLadder(),
		service.WithEncodeLimit(cfg.MaxConcurrentEncodes),
		service.WithMetrics(m),
	)
	if err != nil {
		return nil, fmt.Errorf("build orchestrator: %w", err)
	}
	return service.NewIngestCoordinator(orchestrator, ffmpeg.NewProber(cfg.FFprobePath), m), nil
}
