package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Experience struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Role        string     `json:"role" gorm:"not null"`
	Company     string     `json:"company" gorm:"not null"`
	Duration    string     `json:"duration"` // free text, e.g. "Feb 2025 – May 2025"
	Description string     `json:"description" gorm:"type:text"`
	Tech        StringList `json:"tech" gorm:"type:text"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
