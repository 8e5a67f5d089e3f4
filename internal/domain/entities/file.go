package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FileDetails is one uploaded file, video or thumbnail. A video row is
// only inserted after its chunks were merged, so DurationInSeconds is
// either set at creation or stays null for files the client did not
// report a duration for.
type FileDetails struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"type:varchar(255);not null"`
	FileName          string    `gorm:"type:varchar(255);not null"`
	FilePath          string    `gorm:"type:varchar(500);not null"`
	FileType          string    `gorm:"type:varchar(20);not null"` // "video" | "image"
	MimeType          string    `gorm:"type:varchar(100)"`
	FileSizeInBytes   int64
	DurationInSeconds *float64
	NoOfMCQs          int
	Width             *int
	Height            *int
	IsThumbnail       bool
	ThumbnailID       *uuid.UUID `gorm:"type:uuid"`
	Tags              datatypes.JSON
	Metadata          datatypes.JSON
	UploadedAt        time.Time
}

func (f *FileDetails) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.UploadedAt.IsZero() {
		f.UploadedAt = time.Now()
	}
	return
}
