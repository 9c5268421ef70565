package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio is a single project entry. UserID is stored verbatim; there are
// no cascade rules tied to it.
type Portfolio struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"userId" gorm:"index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Github      string    `json:"github"`
	Website     string    `json:"website"`
	ImageKey    string    `json:"imageKey,omitempty"` // object-storage key for the project image
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
