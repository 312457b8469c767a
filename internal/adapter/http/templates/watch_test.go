package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
)

func TestWatch(t *testing.T) {
	m := domain.NewMedia(domain.MediaTypeMovie, `Heat "95"`, "Cops & robbers")
	m.PosterURL = "/api/v1/public/uploads/posters/1/a.png"
	m.MarkIngestReady(&domain.TranscodeResult{MasterPlaylist: "/api/v1/public/uploads/videos/1/hls/master.m3u8"})

	var buf bytes.Buffer
	require.NoError(t, Watch(m).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Heat &#34;95&#34;</title>")
	assert.Contains(t, html, `data-src="/api/v1/public/uploads/videos/1/hls/master.m3u8"`)
	assert.Contains(t, html, `data-poster="/api/v1/public/uploads/posters/1/a.png"`)
	assert.Contains(t, html, "<p>Cops &amp; robbers</p>")
	assert.NotContains(t, html, "not available yet")
}

func TestWatch_NotPlayable(t *testing.T) {
	tests := []struct {
		status domain.IngestStatus
		want   string
	}{
		{domain.IngestStatusNone, "not available yet (no upload)"},
		{domain.IngestStatusProcessing, "not available yet (processing)"},
		{domain.IngestStatusFailed, "not available yet (failed)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			m := domain.NewMedia(domain.MediaTypeMovie, "<b>Heat</b>", "plot")
			m.IngestStatus = tt.status

			var buf bytes.Buffer
			require.NoError(t, Watch(m).Render(context.Background(), &buf))

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "&lt;b&gt;Heat&lt;/b&gt;")
			assert.NotContains(t, buf.String(), `id="player"`)
		})
	}
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NotFound().Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "<h1>Not found</h1>")
	assert.Contains(t, buf.String(), "<!doctype html>")
}
