package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Prober reads container-level metadata. The segment processor only
// needs the total duration.
type Prober interface {
	Duration(ctx context.Context, videoPath string) (float64, error)
}

type FFProber struct {
	ffprobePath string
	runner      Runner
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Duration  string `json:"duration,omitempty"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func NewFFProber(ffprobePath string, runner Runner) *FFProber {
	return &FFProber{
		ffprobePath: ffprobePath,
		runner:      runner,
	}
}

func (p *FFProber) Duration(ctx context.Context, videoPath string) (float64, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		videoPath,
	}

	output, err := p.runner.Run(ctx, p.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probeData ffprobeOutput
	if err := json.Unmarshal(output, &probeData); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if probeData.Format.Duration != "" {
		if duration, err := strconv.ParseFloat(probeData.Format.Duration, 64); err == nil {
			return duration, nil
		}
	}

	// Fall back to the first stream that reports a duration.
	for _, stream := range probeData.Streams {
		if stream.Duration != "" {
			if duration, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
				return duration, nil
			}
		}
	}

	return 0, fmt.Errorf("no duration in ffprobe output for %s", videoPath)
}
