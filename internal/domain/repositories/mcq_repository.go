package repositories

import (
	"video-mcq/internal/domain/entities"

	"github.com/google/uuid"
)

type MCQRepository interface {
	CreateBatch(mcqs []entities.MCQ) error
	FindByID(id uuid.UUID) (*entities.MCQ, error)
	FindByVideoID(videoID uuid.UUID) ([]entities.MCQ, error)
	Update(mcq *entities.MCQ) error
	DeleteByVideoID(videoID uuid.UUID) (int64, error)
}
