package repositories

import (
	"errors"

	"video-mcq/internal/domain/entities"
	domain "video-mcq/internal/domain/repositories"
	"video-mcq/pkg/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) domain.FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *entities.FileDetails) error {
	return r.db.Create(file).Error
}

func (r *fileRepository) FindByID(id uuid.UUID) (*entities.FileDetails, error) {
	var file entities.FileDetails
	if err := r.db.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) FindAllVideos() ([]entities.FileDetails, error) {
	var files []entities.FileDetails
	err := r.db.
		Where("file_type = ? AND is_thumbnail = ?", constants.FileTypeVideo, false).
		Order("uploaded_at DESC").
		Find(&files).Error
	return files, err
}

func (r *fileRepository) DeleteByID(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&entities.FileDetails{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
