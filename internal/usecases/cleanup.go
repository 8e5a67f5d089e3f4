package usecases

import (
	"log"
	"time"

	"video-mcq/internal/domain/repositories"
)

// CleanupService removes chunk files left behind by interrupted uploads.
type CleanupService struct {
	chunks repositories.ChunkRepository
	maxAge time.Duration
}

func NewCleanupService(chunks repositories.ChunkRepository, maxAge time.Duration) *CleanupService {
	return &CleanupService{chunks: chunks, maxAge: maxAge}
}

func (s *CleanupService) Run() {
	if err := s.chunks.CleanupOldChunks(s.maxAge); err != nil {
		log.Printf("WARN: chunk cleanup failed: %v", err)
	}
}
