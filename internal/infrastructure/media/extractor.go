package media

import (
	"context"
	"fmt"
)

// AudioExtractor cuts one window of a video's audio track into a mono
// PCM WAV artifact, the input format of the transcription service.
type AudioExtractor interface {
	ExtractWindow(ctx context.Context, videoPath, outputPath string, startSeconds, durationSeconds float64) error
}

type FFmpegExtractor struct {
	ffmpegPath string
	runner     Runner
}

func NewFFmpegExtractor(ffmpegPath string, runner Runner) *FFmpegExtractor {
	return &FFmpegExtractor{
		ffmpegPath: ffmpegPath,
		runner:     runner,
	}
}

func (e *FFmpegExtractor) ExtractWindow(ctx context.Context, videoPath, outputPath string, startSeconds, durationSeconds float64) error {
	args := []string{
		"-y",
		"-ss", formatSeconds(startSeconds),
		"-i", videoPath,
		"-t", formatSeconds(durationSeconds),
		"-vn",
		"-ac", "1",
		"-acodec", "pcm_s16le",
		"-f", "wav",
		outputPath,
	}

	if _, err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("audio extraction failed for window at %ss: %w", formatSeconds(startSeconds), err)
	}
	return nil
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.3f", s)
}
