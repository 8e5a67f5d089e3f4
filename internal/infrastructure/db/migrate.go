package db

import (
	"video-mcq/internal/domain/entities"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.FileDetails{},
		&entities.MCQ{},
	)
}
