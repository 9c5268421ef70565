package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Degree      string     `json:"degree" gorm:"not null"`
	Institution string     `json:"institution" gorm:"not null"`
	Year        string     `json:"year"`
	CGPA        string     `json:"cgpa,omitempty"`
	Highlights  StringList `json:"highlights" gorm:"type:text"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
