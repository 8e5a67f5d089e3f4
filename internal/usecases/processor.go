package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"video-mcq/internal/domain/entities"
	"video-mcq/internal/domain/repositories"
	"video-mcq/internal/infrastructure/clients"
	"video-mcq/internal/infrastructure/media"
	"video-mcq/internal/infrastructure/notify"
	"video-mcq/internal/infrastructure/queue"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SegmentProcessor walks a merged video in fixed-length windows and
// drives each window through extraction, transcription, question
// generation and persistence, strictly in index order. One run handles
// one video; there is no per-segment recovery — the first failure ends
// the run and segments persisted before it remain.
type SegmentProcessor struct {
	mcqs           repositories.MCQRepository
	prober         media.Prober
	extractor      media.AudioExtractor
	transcriber    clients.Transcriber
	generator      clients.QuestionGenerator
	notifier       notify.Publisher
	tempDir        string
	segmentSeconds float64
}

func NewSegmentProcessor(
	mcqs repositories.MCQRepository,
	prober media.Prober,
	extractor media.AudioExtractor,
	transcriber clients.Transcriber,
	generator clients.QuestionGenerator,
	notifier notify.Publisher,
	tempDir string,
	segmentSeconds float64,
) *SegmentProcessor {
	return &SegmentProcessor{
		mcqs:           mcqs,
		prober:         prober,
		extractor:      extractor,
		transcriber:    transcriber,
		generator:      generator,
		notifier:       notifier,
		tempDir:        tempDir,
		segmentSeconds: segmentSeconds,
	}
}

// Run executes one job and reports a terminal notification on failure.
// It is the entry point for the queue consumer.
func (p *SegmentProcessor) Run(ctx context.Context, job queue.VideoJob) {
	log.Printf("Processing video %s (%s)", job.VideoID, job.VideoPath)

	if err := p.Process(ctx, job); err != nil {
		log.Printf("Segment processing failed for video %s: %v", job.VideoID, err)
		p.publish(fmt.Sprintf("MCQ generation failed for %s: %v", job.Title, err))
		return
	}

	log.Printf("All segments processed for video %s", job.VideoID)
}

func (p *SegmentProcessor) Process(ctx context.Context, job queue.VideoJob) error {
	videoID, err := uuid.Parse(job.VideoID)
	if err != nil {
		return fmt.Errorf("invalid video id %q: %w", job.VideoID, err)
	}

	if err := os.MkdirAll(p.tempDir, 0755); err != nil {
		return fmt.Errorf("temp directory could not be created: %w", err)
	}

	totalDuration, err := p.prober.Duration(ctx, job.VideoPath)
	if err != nil {
		return fmt.Errorf("duration probe failed: %w", err)
	}

	for start, segIndex := 0.0, 0; start < totalDuration; start, segIndex = start+p.segmentSeconds, segIndex+1 {
		end := math.Min(start+p.segmentSeconds, totalDuration)

		if err := p.processSegment(ctx, job, videoID, segIndex, start, end); err != nil {
			return fmt.Errorf("segment %d failed: %w", segIndex, err)
		}
	}

	p.publish("All segments processed and MCQs stored")
	return nil
}

func (p *SegmentProcessor) processSegment(ctx context.Context, job queue.VideoJob, videoID uuid.UUID, segIndex int, start, end float64) error {
	segmentPath := filepath.Join(p.tempDir, fmt.Sprintf("%s_segment_%d.wav", job.VideoID, segIndex))

	if err := p.extractor.ExtractWindow(ctx, job.VideoPath, segmentPath, start, end-start); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(segmentPath); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN: segment artifact could not be removed %s: %v", segmentPath, err)
		}
	}()

	transcript, err := p.transcriber.Transcribe(ctx, segmentPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	generated, err := p.generator.Generate(ctx, transcript, job.NoOfMCQs)
	if err != nil {
		return fmt.Errorf("question generation failed: %w", err)
	}

	records := make([]entities.MCQ, 0, len(generated))
	for _, mcq := range generated {
		options, err := json.Marshal(mcq.Options)
		if err != nil {
			return fmt.Errorf("options could not be encoded: %w", err)
		}
		records = append(records, entities.MCQ{
			VideoID:      videoID,
			SegmentIndex: segIndex,
			Start:        start,
			End:          end,
			Question:     mcq.Question,
			Options:      datatypes.JSON(options),
			Answer:       mcq.Answer,
		})
	}

	if err := p.mcqs.CreateBatch(records); err != nil {
		return fmt.Errorf("MCQs could not be persisted: %w", err)
	}

	p.publish(fmt.Sprintf("MCQs generated for segment %d", segIndex))
	return nil
}

func (p *SegmentProcessor) publish(message string) {
	if err := p.notifier.Publish(message); err != nil {
		log.Printf("Notification publish failed: %v", err)
	}
}
