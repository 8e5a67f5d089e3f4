package repositories

import (
	"errors"

	"video-mcq/internal/domain/entities"
	domain "video-mcq/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mcqRepository struct {
	db *gorm.DB
}

func NewMCQRepository(db *gorm.DB) domain.MCQRepository {
	return &mcqRepository{db: db}
}

func (r *mcqRepository) CreateBatch(mcqs []entities.MCQ) error {
	if len(mcqs) == 0 {
		return nil
	}
	return r.db.Create(&mcqs).Error
}

func (r *mcqRepository) FindByID(id uuid.UUID) (*entities.MCQ, error) {
	var mcq entities.MCQ
	if err := r.db.First(&mcq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mcq, nil
}

func (r *mcqRepository) FindByVideoID(videoID uuid.UUID) ([]entities.MCQ, error) {
	var mcqs []entities.MCQ
	err := r.db.
		Where("video_id = ?", videoID).
		Order("segment_index ASC").
		Find(&mcqs).Error
	return mcqs, err
}

func (r *mcqRepository) Update(mcq *entities.MCQ) error {
	return r.db.Save(mcq).Error
}

func (r *mcqRepository) DeleteByVideoID(videoID uuid.UUID) (int64, error) {
	result := r.db.Delete(&entities.MCQ{}, "video_id = ?", videoID)
	return result.RowsAffected, result.Error
}
