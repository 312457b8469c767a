package port

import (
	"context"

	"github.com/bnema/mediahub/internal/domain"
)

// RenditionRequest describes one rendition encode. OutputRoot is the ingestion
// root; the encoder writes under OutputRoot/hls/<Spec.Name>.
type RenditionRequest struct {
	InputPath  string
	OutputRoot string
	Stem       string
	Spec       domain.RenditionSpec
}

type RenditionEncoder interface {
	// EncodeRendition returns the playlist path relative to OutputRoot.
	EncodeRendition(ctx context.Context, req RenditionRequest) (string, error)
}

type Prober interface {
	Probe(ctx context.Context, path string) (*domain.ProbeResult, error)
}
