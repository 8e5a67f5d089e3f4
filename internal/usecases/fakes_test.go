package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"video-mcq/internal/domain/entities"
	"video-mcq/internal/infrastructure/clients"
	"video-mcq/internal/infrastructure/queue"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence and pipeline boundaries. Each
// one records what it was asked to do so tests can assert on order and
// content.

type fakeFileRepo struct {
	records map[uuid.UUID]*entities.FileDetails
	findErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{records: make(map[uuid.UUID]*entities.FileDetails)}
}

func (r *fakeFileRepo) Create(file *entities.FileDetails) error {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now()
	}
	clone := *file
	r.records[file.ID] = &clone
	return nil
}

func (r *fakeFileRepo) FindByID(id uuid.UUID) (*entities.FileDetails, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	record, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (r *fakeFileRepo) FindAllVideos() ([]entities.FileDetails, error) {
	var videos []entities.FileDetails
	for _, record := range r.records {
		if record.FileType == "video" && !record.IsThumbnail {
			videos = append(videos, *record)
		}
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].UploadedAt.After(videos[j].UploadedAt)
	})
	return videos, nil
}

// recordsAny returns any stored record, for tests that created one.
func (r *fakeFileRepo) recordsAny() *entities.FileDetails {
	for _, record := range r.records {
		return record
	}
	return nil
}

func (r *fakeFileRepo) DeleteByID(id uuid.UUID) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

type fakeMCQRepo struct {
	records   map[uuid.UUID]*entities.MCQ
	order     []uuid.UUID
	createErr error
	updated   int
}

func newFakeMCQRepo() *fakeMCQRepo {
	return &fakeMCQRepo{records: make(map[uuid.UUID]*entities.MCQ)}
}

func (r *fakeMCQRepo) CreateBatch(mcqs []entities.MCQ) error {
	if r.createErr != nil {
		return r.createErr
	}
	for i := range mcqs {
		if mcqs[i].ID == uuid.Nil {
			mcqs[i].ID = uuid.New()
		}
		clone := mcqs[i]
		r.records[clone.ID] = &clone
		r.order = append(r.order, clone.ID)
	}
	return nil
}

func (r *fakeMCQRepo) FindByID(id uuid.UUID) (*entities.MCQ, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (r *fakeMCQRepo) FindByVideoID(videoID uuid.UUID) ([]entities.MCQ, error) {
	var mcqs []entities.MCQ
	for _, id := range r.order {
		if record := r.records[id]; record != nil && record.VideoID == videoID {
			mcqs = append(mcqs, *record)
		}
	}
	sort.SliceStable(mcqs, func(i, j int) bool {
		return mcqs[i].SegmentIndex < mcqs[j].SegmentIndex
	})
	return mcqs, nil
}

func (r *fakeMCQRepo) Update(mcq *entities.MCQ) error {
	clone := *mcq
	r.records[mcq.ID] = &clone
	r.updated++
	return nil
}

func (r *fakeMCQRepo) DeleteByVideoID(videoID uuid.UUID) (int64, error) {
	var deleted int64
	for id, record := range r.records {
		if record.VideoID == videoID {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeStorage struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(src io.Reader, folder, filename string) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	relPath := folder + "/" + filename
	s.saved[relPath] = data
	return relPath, nil
}

func (s *fakeStorage) Open(relPath string) (io.ReadCloser, error) {
	data, ok := s.saved[relPath]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	delete(s.saved, relPath)
	return nil
}

type fakePublisher struct {
	messages []string
}

func (p *fakePublisher) Publish(message string) error {
	p.messages = append(p.messages, message)
	return nil
}

type fakeEnqueuer struct {
	jobs []queue.VideoJob
	err  error
}

func (e *fakeEnqueuer) Enqueue(ctx context.Context, job queue.VideoJob) error {
	if e.err != nil {
		return e.err
	}
	e.jobs = append(e.jobs, job)
	return nil
}

// fakeChunkStore keeps chunks in memory and materializes the merge as a
// real file so the record-creation path can stat it.
type fakeChunkStore struct {
	dir      string
	chunks   map[string][][]byte
	mergeErr error
}

func newFakeChunkStore(dir string) *fakeChunkStore {
	return &fakeChunkStore{dir: dir, chunks: make(map[string][][]byte)}
}

func (c *fakeChunkStore) NextChunkIndex(baseName string) (int, error) {
	return len(c.chunks[baseName]), nil
}

func (c *fakeChunkStore) ReceiveChunk(baseName string, src io.Reader) (int, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	c.chunks[baseName] = append(c.chunks[baseName], data)
	return len(c.chunks[baseName]) - 1, nil
}

func (c *fakeChunkStore) MergeChunks(baseName string, totalChunks int) (string, error) {
	if c.mergeErr != nil {
		return "", c.mergeErr
	}
	if len(c.chunks[baseName]) != totalChunks {
		return "", fmt.Errorf("have %d chunks, expected %d", len(c.chunks[baseName]), totalChunks)
	}
	finalPath := filepath.Join(c.dir, baseName)
	if err := os.WriteFile(finalPath, bytes.Join(c.chunks[baseName], nil), 0644); err != nil {
		return "", err
	}
	delete(c.chunks, baseName)
	return finalPath, nil
}

func (c *fakeChunkStore) CleanupOldChunks(maxAge time.Duration) error {
	return nil
}

type fakeProber struct {
	duration float64
	err      error
}

func (p *fakeProber) Duration(ctx context.Context, videoPath string) (float64, error) {
	return p.duration, p.err
}

type extractedWindow struct {
	start    float64
	duration float64
	output   string
}

type fakeExtractor struct {
	windows []extractedWindow
	failAt  int // segment index, -1 for never
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{failAt: -1}
}

func (e *fakeExtractor) ExtractWindow(ctx context.Context, videoPath, outputPath string, startSeconds, durationSeconds float64) error {
	if e.failAt >= 0 && len(e.windows) == e.failAt {
		return fmt.Errorf("extraction did not produce output for %s", outputPath)
	}
	e.windows = append(e.windows, extractedWindow{
		start:    startSeconds,
		duration: durationSeconds,
		output:   outputPath,
	})
	return nil
}

type fakeTranscriber struct {
	calls  int
	failAt int // call number (1-based), 0 for never
}

func (t *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.calls++
	if t.failAt > 0 && t.calls == t.failAt {
		return "", fmt.Errorf("transcription service unavailable")
	}
	return fmt.Sprintf("transcript of %s", filepath.Base(audioPath)), nil
}

type fakeGenerator struct {
	perCall int
	calls   []string
}

func (g *fakeGenerator) Generate(ctx context.Context, transcript string, noOfMCQs string) ([]clients.GeneratedMCQ, error) {
	g.calls = append(g.calls, transcript)
	mcqs := make([]clients.GeneratedMCQ, g.perCall)
	for i := range mcqs {
		mcqs[i] = clients.GeneratedMCQ{
			Question: fmt.Sprintf("question %d for call %d", i, len(g.calls)),
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
		}
	}
	return mcqs, nil
}
