package usecases

import (
	"fmt"
	"log"

	"video-mcq/internal/domain/dto"
	"video-mcq/internal/domain/entities"
	"video-mcq/internal/domain/repositories"
	"video-mcq/pkg/errors"

	"github.com/google/uuid"
)

type VideoService interface {
	ListVideos() (*dto.VideoListResponse, error)
	GetFileByID(fileID string) (*entities.FileDetails, error)
	DeleteVideo(fileID string) error
}

// videoService separates the two storage concerns: video binaries are
// always on the local filesystem (the merge, ffmpeg and streaming paths
// all need real files), thumbnails live behind the configured strategy.
type videoService struct {
	files      repositories.FileRepository
	mcqs       repositories.MCQRepository
	videoStore repositories.StorageStrategy
	thumbStore repositories.StorageStrategy
}

func NewVideoService(
	files repositories.FileRepository,
	mcqs repositories.MCQRepository,
	videoStore repositories.StorageStrategy,
	thumbStore repositories.StorageStrategy,
) VideoService {
	return &videoService{
		files:      files,
		mcqs:       mcqs,
		videoStore: videoStore,
		thumbStore: thumbStore,
	}
}

func (s *videoService) ListVideos() (*dto.VideoListResponse, error) {
	videos, err := s.files.FindAllVideos()
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	result := make([]dto.VideoListItemDTO, 0, len(videos))
	for _, video := range videos {
		item := dto.VideoListItemDTO{
			VideoFileName:     video.Title,
			FileID:            video.ID.String(),
			VideoURL:          fmt.Sprintf("/api/files/stream/%s", video.ID),
			DurationInSeconds: video.DurationInSeconds,
			UploadedAt:        video.UploadedAt,
		}

		if video.ThumbnailID != nil {
			thumbnail, err := s.files.FindByID(*video.ThumbnailID)
			if err != nil {
				return nil, errors.ErrInternal(err)
			}
			if thumbnail != nil && thumbnail.IsThumbnail {
				url := fmt.Sprintf("/api/files/thumbnails/%s", thumbnail.FileName)
				item.ThumbnailURL = &url
			}
		}

		result = append(result, item)
	}

	return &dto.VideoListResponse{Result: result}, nil
}

func (s *videoService) GetFileByID(fileID string) (*entities.FileDetails, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return nil, errors.ErrNotFound(fmt.Errorf("malformed file id %q: %w", fileID, err))
	}

	file, err := s.files.FindByID(id)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	if file == nil {
		return nil, errors.ErrNotFound(fmt.Errorf("file %s does not exist", fileID))
	}
	return file, nil
}

// DeleteVideo cascades: thumbnail file and record first, then the MCQ
// set, then the video file and record. File removals are best-effort;
// record removals are not.
func (s *videoService) DeleteVideo(fileID string) error {
	video, err := s.GetFileByID(fileID)
	if err != nil {
		return err
	}

	if video.ThumbnailID != nil {
		thumbnail, err := s.files.FindByID(*video.ThumbnailID)
		if err != nil {
			return errors.ErrInternal(err)
		}
		if thumbnail != nil {
			if err := s.thumbStore.Delete(thumbnail.FilePath); err != nil {
				log.Printf("WARN: thumbnail file could not be deleted %s: %v", thumbnail.FilePath, err)
			}
			if _, err := s.files.DeleteByID(thumbnail.ID); err != nil {
				return errors.ErrInternal(err)
			}
		}
	}

	deleted, err := s.mcqs.DeleteByVideoID(video.ID)
	if err != nil {
		return errors.ErrInternal(err)
	}
	if deleted > 0 {
		log.Printf("Deleted %d MCQs for video %s", deleted, video.ID)
	}

	if err := s.videoStore.Delete(video.FilePath); err != nil {
		log.Printf("WARN: video file could not be deleted %s: %v", video.FilePath, err)
	}

	if _, err := s.files.DeleteByID(video.ID); err != nil {
		return errors.ErrInternal(err)
	}
	return nil
}
