package usecases

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"video-mcq/internal/domain/dto"
	"video-mcq/internal/domain/entities"
	"video-mcq/internal/domain/repositories"
	"video-mcq/internal/infrastructure/media"
	"video-mcq/internal/infrastructure/notify"
	"video-mcq/internal/infrastructure/queue"
	"video-mcq/pkg/constants"
	"video-mcq/pkg/errors"
	"video-mcq/pkg/helper"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UploadService interface {
	UploadChunk(req *dto.UploadChunkRequestDTO, fileHeader *multipart.FileHeader) (*dto.UploadChunkResponse, error)
	UploadThumbnail(title string, fileHeader *multipart.FileHeader) (*dto.UploadThumbnailResponse, error)
}

type uploadService struct {
	chunks   repositories.ChunkRepository
	files    repositories.FileRepository
	storage  repositories.StorageStrategy
	enqueuer queue.Enqueuer
	notifier notify.Publisher
}

func NewUploadService(
	chunks repositories.ChunkRepository,
	files repositories.FileRepository,
	storage repositories.StorageStrategy,
	enqueuer queue.Enqueuer,
	notifier notify.Publisher,
) UploadService {
	return &uploadService{
		chunks:   chunks,
		files:    files,
		storage:  storage,
		enqueuer: enqueuer,
		notifier: notifier,
	}
}

// UploadChunk persists one byte-range slice. The declared chunk index
// only decides whether this call is the final one; placement uses the
// server-assigned index from the chunk directory scan. The final call
// merges, creates the asset record, and hands the video to the
// background MCQ pipeline before returning.
func (s *uploadService) UploadChunk(req *dto.UploadChunkRequestDTO, fileHeader *multipart.FileHeader) (*dto.UploadChunkResponse, error) {
	if req.OriginalName == "" || req.Chunk == "" || req.TotalChunks == "" {
		return nil, errors.ErrMissingField(fmt.Errorf("originalname, chunk and totalChunks are required"))
	}

	chunkNumber, err := strconv.Atoi(req.Chunk)
	if err != nil || chunkNumber < 0 {
		return nil, errors.ErrInvalidChunk(fmt.Errorf("chunk index %q is not a non-negative integer", req.Chunk))
	}
	totalChunks, err := strconv.Atoi(req.TotalChunks)
	if err != nil || totalChunks <= 0 {
		return nil, errors.ErrInvalidChunk(fmt.Errorf("totalChunks %q is not a positive integer", req.TotalChunks))
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !helper.IsVideoMimeType(mimeType) {
		return nil, errors.ErrInvalidFileType(fmt.Errorf("not a video file: %s", mimeType))
	}

	baseName := helper.SanitizeFilename(req.OriginalName)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrInvalidChunk(err)
	}
	defer src.Close()

	if _, err := s.chunks.ReceiveChunk(baseName, src); err != nil {
		return nil, errors.ErrChunkNotSaved(err)
	}

	if chunkNumber != totalChunks-1 {
		return &dto.UploadChunkResponse{Message: "Chunk uploaded successfully"}, nil
	}

	mergedPath, err := s.chunks.MergeChunks(baseName, totalChunks)
	if err != nil {
		return nil, errors.ErrMergeFailed(err)
	}

	record, err := s.createVideoRecord(req, baseName, mergedPath)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Publish(fmt.Sprintf("Generating MCQs for %s", record.Title)); err != nil {
		log.Printf("Notification publish failed: %v", err)
	}

	videoPath, err := filepath.Abs(mergedPath)
	if err != nil {
		videoPath = mergedPath
	}
	job := queue.VideoJob{
		VideoPath: videoPath,
		VideoID:   record.ID.String(),
		Title:     record.Title,
		NoOfMCQs:  strconv.Itoa(record.NoOfMCQs),
	}
	if err := s.enqueuer.Enqueue(context.Background(), job); err != nil {
		// The video is stored and recorded; only the background pipeline
		// is lost. Surface it in logs, not to the uploader.
		log.Printf("Job enqueue failed for video %s: %v", record.ID, err)
	}

	return &dto.UploadChunkResponse{
		Message: "Video uploaded and saved successfully",
		FileID:  record.ID.String(),
	}, nil
}

func (s *uploadService) createVideoRecord(req *dto.UploadChunkRequestDTO, baseName, mergedPath string) (*entities.FileDetails, error) {
	var size int64
	if stat, err := os.Stat(mergedPath); err == nil {
		size = stat.Size()
	}

	var duration *float64
	if req.DurationInSeconds != "" {
		if parsed, err := strconv.ParseFloat(req.DurationInSeconds, 64); err == nil {
			duration = &parsed
		}
	}

	noOfMCQs, _ := strconv.Atoi(req.NoOfMCQs)

	var thumbnailID *uuid.UUID
	if req.ThumbnailFileID != "" {
		if parsed, err := uuid.Parse(req.ThumbnailFileID); err == nil {
			thumbnailID = &parsed
		} else {
			log.Printf("Ignoring malformed thumbnailFileId %q: %v", req.ThumbnailFileID, err)
		}
	}

	title := req.Title
	if title == "" {
		title = baseName
	}

	record := &entities.FileDetails{
		Title:             title,
		FileName:          baseName,
		FilePath:          filepath.ToSlash(filepath.Join("videos", baseName)),
		FileType:          constants.FileTypeVideo,
		MimeType:          helper.GetMimeTypeFromExtension(baseName),
		FileSizeInBytes:   size,
		DurationInSeconds: duration,
		NoOfMCQs:          noOfMCQs,
		IsThumbnail:       false,
		ThumbnailID:       thumbnailID,
		Tags:              datatypes.JSON("[]"),
		Metadata:          datatypes.JSON("{}"),
	}

	if err := s.files.Create(record); err != nil {
		return nil, errors.ErrInternal(fmt.Errorf("video record could not be saved: %w", err))
	}
	return record, nil
}

// UploadThumbnail stores a thumbnail image under a unique name and
// creates its asset record immediately (no chunking for images).
func (s *uploadService) UploadThumbnail(title string, fileHeader *multipart.FileHeader) (*dto.UploadThumbnailResponse, error) {
	mimeType := fileHeader.Header.Get("Content-Type")
	if !helper.IsImageMimeType(mimeType) {
		return nil, errors.ErrInvalidFileType(fmt.Errorf("only image files are allowed as thumbnail: %s", mimeType))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	defer src.Close()

	filename := fmt.Sprintf("thumb-%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))

	normalized, err := media.NormalizeThumbnail(src, filename)
	if err != nil {
		return nil, errors.ErrInvalidFileType(err)
	}

	relPath, err := s.storage.Save(normalized, "thumbnails", filename)
	if err != nil {
		return nil, errors.ErrInternal(fmt.Errorf("thumbnail could not be stored: %w", err))
	}

	if title == "" {
		title = filename
	}

	record := &entities.FileDetails{
		Title:           title,
		FileName:        filename,
		FilePath:        filepath.ToSlash(relPath),
		FileType:        constants.FileTypeImage,
		MimeType:        mimeType,
		FileSizeInBytes: fileHeader.Size,
		IsThumbnail:     true,
		Tags:            datatypes.JSON("[]"),
		Metadata:        datatypes.JSON("{}"),
	}
	if err := s.files.Create(record); err != nil {
		return nil, errors.ErrInternal(fmt.Errorf("thumbnail record could not be saved: %w", err))
	}

	return &dto.UploadThumbnailResponse{
		Message:  "Thumbnail uploaded and saved successfully",
		FileID:   record.ID.String(),
		Title:    record.Title,
		Filename: record.FileName,
		Path:     record.FilePath,
	}, nil
}
