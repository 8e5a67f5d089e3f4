package repositories

import (
	"video-mcq/internal/domain/entities"

	"github.com/google/uuid"
)

// FileRepository is the asset record store. Records are created once and
// never updated in place; removal happens only through the cascade
// delete flow.
type FileRepository interface {
	Create(file *entities.FileDetails) error
	FindByID(id uuid.UUID) (*entities.FileDetails, error)
	FindAllVideos() ([]entities.FileDetails, error)
	DeleteByID(id uuid.UUID) (bool, error)
}
