package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"video-mcq/internal/domain/dto"
	"video-mcq/internal/domain/entities"
	apperrors "video-mcq/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type stubVideoService struct {
	file *entities.FileDetails
	err  error
}

func (s *stubVideoService) ListVideos() (*dto.VideoListResponse, error) {
	return &dto.VideoListResponse{}, nil
}

func (s *stubVideoService) GetFileByID(fileID string) (*entities.FileDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.file, nil
}

func (s *stubVideoService) DeleteVideo(fileID string) error {
	return s.err
}

type stubStorage struct {
	objects map[string][]byte
}

func (s *stubStorage) Save(src io.Reader, folder, filename string) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	key := folder + "/" + filename
	s.objects[key] = data
	return key, nil
}

func (s *stubStorage) Open(relPath string) (io.ReadCloser, error) {
	data, ok := s.objects[relPath]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubStorage) Delete(relPath string) error {
	delete(s.objects, relPath)
	return nil
}

func newStreamTestApp(t *testing.T, payload []byte) *fiber.App {
	t.Helper()
	uploadsDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(uploadsDir, "videos"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(uploadsDir, "videos", "lecture.mp4"), payload, 0644); err != nil {
		t.Fatal(err)
	}

	service := &stubVideoService{
		file: &entities.FileDetails{
			FileName: "lecture.mp4",
			FilePath: "videos/lecture.mp4",
			MimeType: "video/mp4",
		},
	}

	app := fiber.New()
	handler := NewVideoHandler(service, uploadsDir, &stubStorage{})
	app.Get("/api/files/stream/:fileId", handler.StreamVideo)
	return app
}

func TestStreamVideo_OpenEndedRangeServesWholeTail(t *testing.T) {
	payload := []byte("0123456789abcdef")
	app := newStreamTestApp(t, payload)

	req := httptest.NewRequest("GET", "/api/files/stream/any", nil)
	req.Header.Set("Range", "bytes=0-")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusPartialContent {
		t.Fatalf("status = %d, want 206", resp.StatusCode)
	}
	wantRange := fmt.Sprintf("bytes 0-%d/%d", len(payload)-1, len(payload))
	if got := resp.Header.Get("Content-Range"); got != wantRange {
		t.Fatalf("Content-Range = %q, want %q", got, wantRange)
	}
	if got := resp.Header.Get("Accept-Ranges"); got != "bytes" {
		t.Fatalf("Accept-Ranges = %q, want bytes", got)
	}
	if got := resp.Header.Get("Content-Length"); got != fmt.Sprint(len(payload)) {
		t.Fatalf("Content-Length = %q, want %d", got, len(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("body could not be read: %v", err)
	}
	if string(body) != string(payload) {
		t.Fatalf("body = %q, want full payload", body)
	}
}

func TestStreamVideo_BoundedRangeServesSlice(t *testing.T) {
	payload := []byte("0123456789abcdef")
	app := newStreamTestApp(t, payload)

	req := httptest.NewRequest("GET", "/api/files/stream/any", nil)
	req.Header.Set("Range", "bytes=5-9")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusPartialContent {
		t.Fatalf("status = %d, want 206", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Range"); got != fmt.Sprintf("bytes 5-9/%d", len(payload)) {
		t.Fatalf("Content-Range = %q", got)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "56789" {
		t.Fatalf("body = %q, want %q", body, "56789")
	}
}

func TestStreamVideo_StartBeyondSizeIsNotSatisfiable(t *testing.T) {
	payload := []byte("short")
	app := newStreamTestApp(t, payload)

	req := httptest.NewRequest("GET", "/api/files/stream/any", nil)
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-", len(payload)))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusRequestedRangeNotSatisfiable {
		t.Fatalf("status = %d, want 416", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Range"); got != fmt.Sprintf("bytes */%d", len(payload)) {
		t.Fatalf("Content-Range = %q, want the size-only form", got)
	}
}

func TestStreamVideo_NoRangeServesFullFile(t *testing.T) {
	payload := []byte("full body here")
	app := newStreamTestApp(t, payload)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/files/stream/any", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "video/mp4" {
		t.Fatalf("Content-Type = %q, want video/mp4", got)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != string(payload) {
		t.Fatalf("body = %q, want full payload", body)
	}
}

func TestServeThumbnail_ServesStoredImage(t *testing.T) {
	thumbs := &stubStorage{}
	if _, err := thumbs.Save(bytes.NewReader([]byte("png-bytes")), "thumbnails", "thumb-1.png"); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	handler := NewVideoHandler(&stubVideoService{}, t.TempDir(), thumbs)
	app.Get("/api/files/thumbnails/:filename", handler.ServeThumbnail)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/files/thumbnails/thumb-1.png", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "png-bytes" {
		t.Fatalf("body = %q", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/files/thumbnails/missing.png", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown thumbnail", resp.StatusCode)
	}
}

func TestStreamVideo_UnknownFileIs404(t *testing.T) {
	app := fiber.New()
	service := &stubVideoService{err: apperrors.ErrNotFound(fmt.Errorf("no such file"))}
	app.Get("/api/files/stream/:fileId", NewVideoHandler(service, t.TempDir(), &stubStorage{}).StreamVideo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/files/stream/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetFile_ReturnsRecordDetails(t *testing.T) {
	app := fiber.New()
	service := &stubVideoService{
		file: &entities.FileDetails{
			Title:    "Intro to Signals",
			FileName: "lecture.mp4",
			FilePath: "videos/lecture.mp4",
		},
	}
	app.Get("/api/files/:fileId", NewVideoHandler(service, t.TempDir(), &stubStorage{}).GetFile)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/files/some-id", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var payload struct {
		Message string               `json:"message"`
		Data    entities.FileDetails `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "File details fetched successfully" {
		t.Fatalf("message = %q", payload.Message)
	}
	if payload.Data.Title != "Intro to Signals" || payload.Data.FileName != "lecture.mp4" {
		t.Fatalf("unexpected record: %+v", payload.Data)
	}
}

func TestGetFile_UnknownIDIs404(t *testing.T) {
	app := fiber.New()
	service := &stubVideoService{err: apperrors.ErrNotFound(fmt.Errorf("no such file"))}
	app.Get("/api/files/:fileId", NewVideoHandler(service, t.TempDir(), &stubStorage{}).GetFile)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/files/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
