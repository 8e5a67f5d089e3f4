package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"video-mcq/internal/infrastructure/queue"

	"github.com/google/uuid"
)

func newTestProcessor(t *testing.T, duration float64, mcqsPerSegment int) (*SegmentProcessor, *fakeMCQRepo, *fakeExtractor, *fakeTranscriber, *fakePublisher) {
	t.Helper()
	mcqs := newFakeMCQRepo()
	extractor := newFakeExtractor()
	transcriber := &fakeTranscriber{}
	publisher := &fakePublisher{}
	processor := NewSegmentProcessor(
		mcqs,
		&fakeProber{duration: duration},
		extractor,
		transcriber,
		&fakeGenerator{perCall: mcqsPerSegment},
		publisher,
		t.TempDir(),
		300,
	)
	return processor, mcqs, extractor, transcriber, publisher
}

func testJob(videoID uuid.UUID, noOfMCQs int) queue.VideoJob {
	return queue.VideoJob{
		VideoPath: "/videos/lecture.mp4",
		VideoID:   videoID.String(),
		Title:     "lecture",
		NoOfMCQs:  fmt.Sprintf("%d", noOfMCQs),
	}
}

func TestProcess_WindowsCoverDurationWithTruncatedTail(t *testing.T) {
	processor, _, extractor, _, _ := newTestProcessor(t, 725, 1)

	if err := processor.Process(context.Background(), testJob(uuid.New(), 1)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := []extractedWindow{
		{start: 0, duration: 300},
		{start: 300, duration: 300},
		{start: 600, duration: 125},
	}
	if len(extractor.windows) != len(want) {
		t.Fatalf("extracted %d windows, want %d", len(extractor.windows), len(want))
	}
	for i, w := range want {
		got := extractor.windows[i]
		if got.start != w.start || got.duration != w.duration {
			t.Fatalf("window %d = (%v, %v), want (%v, %v)", i, got.start, got.duration, w.start, w.duration)
		}
		if !strings.Contains(got.output, fmt.Sprintf("_segment_%d.wav", i)) {
			t.Fatalf("window %d artifact name %q lacks segment index", i, got.output)
		}
	}
}

func TestProcess_ExactMultipleProducesNoEmptyWindow(t *testing.T) {
	processor, _, extractor, _, _ := newTestProcessor(t, 600, 1)

	if err := processor.Process(context.Background(), testJob(uuid.New(), 1)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(extractor.windows) != 2 {
		t.Fatalf("extracted %d windows, want 2", len(extractor.windows))
	}
}

func TestProcess_PersistsSegmentMCQsAndNotifies(t *testing.T) {
	videoID := uuid.New()
	processor, mcqs, _, _, publisher := newTestProcessor(t, 720, 3)

	if err := processor.Process(context.Background(), testJob(videoID, 3)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	stored, err := mcqs.FindByVideoID(videoID)
	if err != nil {
		t.Fatalf("FindByVideoID failed: %v", err)
	}
	if len(stored) != 9 {
		t.Fatalf("stored %d MCQs, want 9 (3 segments x 3 questions)", len(stored))
	}

	bounds := [][2]float64{{0, 300}, {300, 600}, {600, 720}}
	for i, mcq := range stored {
		segment := i / 3
		if mcq.SegmentIndex != segment {
			t.Fatalf("record %d has segment %d, want %d", i, mcq.SegmentIndex, segment)
		}
		if mcq.Start != bounds[segment][0] || mcq.End != bounds[segment][1] {
			t.Fatalf("segment %d stored range (%v, %v), want (%v, %v)",
				segment, mcq.Start, mcq.End, bounds[segment][0], bounds[segment][1])
		}
	}

	wantMessages := []string{
		"MCQs generated for segment 0",
		"MCQs generated for segment 1",
		"MCQs generated for segment 2",
		"All segments processed and MCQs stored",
	}
	if len(publisher.messages) != len(wantMessages) {
		t.Fatalf("published %d messages, want %d: %v", len(publisher.messages), len(wantMessages), publisher.messages)
	}
	for i, want := range wantMessages {
		if publisher.messages[i] != want {
			t.Fatalf("message %d = %q, want %q", i, publisher.messages[i], want)
		}
	}
}

func TestProcess_FailureStopsRunAndKeepsEarlierSegments(t *testing.T) {
	videoID := uuid.New()
	processor, mcqs, extractor, transcriber, publisher := newTestProcessor(t, 900, 2)
	transcriber.failAt = 2 // second segment's transcription

	err := processor.Process(context.Background(), testJob(videoID, 2))
	if err == nil {
		t.Fatal("expected Process to fail")
	}
	if !strings.Contains(err.Error(), "segment 1") {
		t.Fatalf("error does not name the failing segment: %v", err)
	}

	// Segment 2 was never started.
	if len(extractor.windows) != 2 {
		t.Fatalf("extracted %d windows, want 2 (run stops at first failure)", len(extractor.windows))
	}

	stored, _ := mcqs.FindByVideoID(videoID)
	if len(stored) != 2 {
		t.Fatalf("stored %d MCQs, want the 2 from segment 0 only", len(stored))
	}
	for _, msg := range publisher.messages {
		if msg == "All segments processed and MCQs stored" {
			t.Fatal("final notification must not follow a failed run")
		}
	}
}

func TestRun_ReportsFailureNotification(t *testing.T) {
	processor, _, _, transcriber, publisher := newTestProcessor(t, 300, 1)
	transcriber.failAt = 1

	processor.Run(context.Background(), testJob(uuid.New(), 1))

	if len(publisher.messages) != 1 {
		t.Fatalf("published %d messages, want 1: %v", len(publisher.messages), publisher.messages)
	}
	if !strings.HasPrefix(publisher.messages[0], "MCQ generation failed for lecture") {
		t.Fatalf("unexpected failure notification: %q", publisher.messages[0])
	}
}

func TestProcess_RejectsMalformedVideoID(t *testing.T) {
	processor, _, extractor, _, _ := newTestProcessor(t, 300, 1)

	job := queue.VideoJob{VideoPath: "/videos/x.mp4", VideoID: "not-a-uuid", NoOfMCQs: "1"}
	if err := processor.Process(context.Background(), job); err == nil {
		t.Fatal("expected Process to fail on malformed video id")
	}
	if len(extractor.windows) != 0 {
		t.Fatal("no extraction should happen for a rejected job")
	}
}
