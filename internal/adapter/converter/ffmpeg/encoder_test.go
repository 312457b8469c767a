package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "valid path",
			path:    "/tmp/video.mp4",
			wantErr: nil,
		},
		{
			name:    "valid path with spaces",
			path:    "/tmp/my video.mp4",
			wantErr: nil,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "path with null byte in middle",
			path:    "/tmp/\x00video.mp4",
			wantErr: ErrInvalidPath,
		},
		{
			name:    "path with null byte at end",
			path:    "/tmp/video.mp4\x00",
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validatePath(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestRenditionArgs(t *testing.T) {
	spec := domain.RenditionSpec{Name: "720p", Height: 720, VideoBitrateKbps: 3000}
	args := renditionArgs("/in/movie.mp4", "/out/hls/720p", "movie", spec)
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-i /in/movie.mp4",
		"-vf scale=-2:720",
		"-profile:v main",
		"-b:v 3000k",
		"-c:a aac",
		"-b:a 128k",
		"-ar 48000",
		"-color_range 1 -colorspace 1 -color_trc 1 -color_primaries 1",
		"-f hls",
		"-hls_time 10",
		"-hls_list_size 0",
		"-hls_segment_filename /out/hls/720p/movie_%03d.ts",
	} {
		assert.Contains(t, joined, want)
	}
	assert.NotContains(t, args, "-r", "frame rate must be preserved")
	assert.Equal(t, "/out/hls/720p/movie.m3u8", args[len(args)-1])
}

// fakeFFmpeg writes a shell script standing in for ffmpeg. The script body sees
// the playlist path (last argument) as $last.
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\nfor last; do :; done\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestEncoder_EncodeRendition_Success(t *testing.T) {
	bin := fakeFFmpeg(t, `printf '#EXTM3U\n' > "$last"
echo "$@" > "$(dirname "$last")/args.txt"`)
	out := t.TempDir()

	enc := NewEncoder(bin)
	rel, err := enc.EncodeRendition(context.Background(), port.RenditionRequest{
		InputPath:  "/in/movie.mp4",
		OutputRoot: out,
		Stem:       "movie",
		Spec:       domain.RenditionSpec{Name: "240p", Height: 240, VideoBitrateKbps: 500},
	})

	require.NoError(t, err)
	assert.Equal(t, "hls/240p/movie.m3u8", rel)
	assert.FileExists(t, filepath.Join(out, "hls", "240p", "movie.m3u8"))

	args, err := os.ReadFile(filepath.Join(out, "hls", "240p", "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "scale=-2:240")
}

func TestEncoder_EncodeRendition_NonZeroExit(t *testing.T) {
	bin := fakeFFmpeg(t, `printf 'partial' > "$(dirname "$last")/movie_000.ts"
echo "Conversion failed!" >&2
exit 1`)
	out := t.TempDir()

	_, err := NewEncoder(bin).EncodeRendition(context.Background(), port.RenditionRequest{
		InputPath:  "/in/movie.mp4",
		OutputRoot: out,
		Stem:       "movie",
		Spec:       domain.RenditionSpec{Name: "480p", Height: 480, VideoBitrateKbps: 1500},
	})

	var encErr *domain.EncodingFailedError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "480p", encErr.Rendition)
	assert.Contains(t, err.Error(), "Conversion failed!")
	assert.FileExists(t, filepath.Join(out, "hls", "480p", "movie_000.ts"), "the encoder leaves partial output to its caller")
}

func TestEncoder_EncodeRendition_MissingPlaylist(t *testing.T) {
	bin := fakeFFmpeg(t, "exit 0")

	_, err := NewEncoder(bin).EncodeRendition(context.Background(), port.RenditionRequest{
		InputPath:  "/in/movie.mp4",
		OutputRoot: t.TempDir(),
		Stem:       "movie",
		Spec:       domain.RenditionSpec{Name: "240p", Height: 240, VideoBitrateKbps: 500},
	})

	var encErr *domain.EncodingFailedError
	require.ErrorAs(t, err, &encErr)
	assert.Contains(t, err.Error(), "playlist not produced")
}

func TestEncoder_EncodeRendition_ContextCancelKillsProcess(t *testing.T) {
	bin := fakeFFmpeg(t, "exec sleep 30")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewEncoder(bin).EncodeRendition(ctx, port.RenditionRequest{
		InputPath:  "/in/movie.mp4",
		OutputRoot: t.TempDir(),
		Stem:       "movie",
		Spec:       domain.RenditionSpec{Name: "240p", Height: 240, VideoBitrateKbps: 500},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestEncoder_EncodeRendition_InvalidRequest(t *testing.T) {
	enc := NewEncoder("ffmpeg-not-used")
	spec := domain.RenditionSpec{Name: "240p", Height: 240, VideoBitrateKbps: 500}

	tests := []struct {
		name    string
		req     port.RenditionRequest
		wantErr error
	}{
		{name: "empty input", req: port.RenditionRequest{OutputRoot: "/tmp", Stem: "s", Spec: spec}, wantErr: ErrEmptyPath},
		{name: "nul in output root", req: port.RenditionRequest{InputPath: "/in", OutputRoot: "/tmp/\x00", Stem: "s", Spec: spec}, wantErr: ErrInvalidPath},
		{name: "stem with separator", req: port.RenditionRequest{InputPath: "/in", OutputRoot: "/tmp", Stem: "../s", Spec: spec}, wantErr: ErrInvalidPath},
		{name: "invalid spec", req: port.RenditionRequest{InputPath: "/in", OutputRoot: "/tmp", Stem: "s", Spec: domain.RenditionSpec{Name: "x"}}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.EncodeRendition(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			var encErr *domain.EncodingFailedError
			assert.ErrorAs(t, err, &encErr)
		})
	}
}
