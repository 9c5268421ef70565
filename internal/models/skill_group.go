package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillGroup struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	Category  string     `json:"category" gorm:"not null"`
	Items     StringList `json:"items" gorm:"type:text"`
	Order     int        `json:"order"` // display sequence, ascending
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

func (s *SkillGroup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
