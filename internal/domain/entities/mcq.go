package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MCQ is one generated question. VideoID is stored as an opaque id, no
// foreign key: the owning video cascades deletes from the usecase layer.
type MCQ struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID      uuid.UUID `gorm:"type:uuid;index"`
	SegmentIndex int
	Start        float64 // seconds
	End          float64 // seconds
	Question     string         `gorm:"type:text"`
	Options      datatypes.JSON // ordered list of option strings
	Answer       string         `gorm:"type:text"`
}

func (m *MCQ) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
