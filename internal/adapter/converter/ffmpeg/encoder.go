package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
)

const (
	segmentSeconds  = 10
	audioBitrate    = "128k"
	audioSampleRate = "48000"
	stderrTailBytes = 4096
	waitDelay       = 5 * time.Second
)

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

func validateStem(stem string) error {
	if err := validatePath(stem); err != nil {
		return err
	}
	if strings.ContainsAny(stem, `/\`) || stem == "." || stem == ".." {
		return ErrInvalidPath
	}
	return nil
}

// Encoder produces one HLS rendition per call by running ffmpeg.
type Encoder struct {
	binary string
}

func NewEncoder(binary string) *Encoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Encoder{binary: binary}
}

// renditionArgs is the fixed encoding policy. Frame rate is left untouched.
func renditionArgs(input, dir, stem string, spec domain.RenditionSpec) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", input,
		"-vf", fmt.Sprintf("scale=-2:%d", spec.Height),
		"-c:v", "libx264",
		"-profile:v", "main",
		"-b:v", fmt.Sprintf("%dk", spec.VideoBitrateKbps),
		"-c:a", "aac",
		"-b:a", audioBitrate,
		"-ar", audioSampleRate,
		"-color_range", "1",
		"-colorspace", "1",
		"-color_trc", "1",
		"-color_primaries", "1",
		"-f", "hls",
		"-hls_time", strconv.Itoa(segmentSeconds),
		"-hls_list_size", "0",
		"-hls_playlist_type", "vod",
		"-hls_segment_filename", filepath.Join(dir, stem+"_%03d.ts"),
		filepath.Join(dir, stem+".m3u8"),
	}
}

func (e *Encoder) EncodeRendition(ctx context.Context, req port.RenditionRequest) (string, error) {
	name := req.Spec.Name
	fail := func(cause error) (string, error) {
		return "", &domain.EncodingFailedError{Rendition: name, Cause: cause}
	}

	if err := validatePath(req.InputPath); err != nil {
		return fail(fmt.Errorf("input: %w", err))
	}
	if err := validatePath(req.OutputRoot); err != nil {
		return fail(fmt.Errorf("output root: %w", err))
	}
	if err := validateStem(req.Stem); err != nil {
		return fail(fmt.Errorf("stem: %w", err))
	}
	if err := req.Spec.Validate(); err != nil {
		return fail(err)
	}

	dir := filepath.Join(req.OutputRoot, filepath.FromSlash(domain.RenditionDir(name)))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(fmt.Errorf("create rendition directory: %w", err))
	}

	tail := newTailBuffer(stderrTailBytes)
	lines := logger.NewLineWriter(logger.Debug, "ffmpeg["+name+"] ")

	cmd := exec.CommandContext(ctx, e.binary, renditionArgs(req.InputPath, dir, req.Stem, req.Spec)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.MultiWriter(tail, lines)
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	lines.Flush()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fail(fmt.Errorf("%w: %w", ctxErr, err))
		}
		if msg := tail.String(); msg != "" {
			return fail(fmt.Errorf("%w: %s", err, msg))
		}
		return fail(err)
	}

	rel := domain.PlaylistPath(name, req.Stem)
	if _, err := os.Stat(filepath.Join(req.OutputRoot, filepath.FromSlash(rel))); err != nil {
		return fail(fmt.Errorf("playlist not produced: %w", err))
	}
	return rel, nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}

var _ port.RenditionEncoder = (*Encoder)(nil)
