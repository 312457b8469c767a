package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/port"
)

type Prober struct {
	binary string
}

func NewProber(binary string) *Prober {
	if binary == "" {
		binary = "ffprobe"
	}
	return &Prober{binary: binary}
}

func (p *Prober) Probe(ctx context.Context, path string) (*domain.ProbeResult, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}
	output, err := exec.CommandContext(ctx, p.binary, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	result, err := parseProbe(output)
	if err != nil {
		return nil, err
	}

	if vs := result.VideoStream(); vs != nil {
		logger.Debug.Printf("probed %s: %dx%d %s @ %.2f fps",
			logger.SanitizeForLog(path), vs.Width, vs.Height, vs.CodecName, domain.ParseFrameRate(vs.AvgFrameRate))
	}
	return result, nil
}

func parseProbe(output []byte) (*domain.ProbeResult, error) {
	var result domain.ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if result.VideoStream() == nil {
		return nil, fmt.Errorf("no video stream found")
	}
	result.RawJSON = string(output)
	return &result, nil
}

var _ port.Prober = (*Prober)(nil)
