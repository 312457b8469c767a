package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNotFoundError_Is(t *testing.T) {
	err := fmt.Errorf("ingest: %w", &SourceNotFoundError{Path: "/tmp/missing.mp4"})

	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), "/tmp/missing.mp4")
}

func TestIngestionFailedError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &IngestionFailedError{Failures: []*EncodingFailedError{
		{Rendition: "480p", Cause: cause},
		{Rendition: "1080p", Cause: errors.New("killed")},
	}}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"480p", "1080p"}, err.Renditions())

	var encErr *EncodingFailedError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "480p", encErr.Rendition)
	assert.Contains(t, err.Error(), "2 rendition(s)")
}
