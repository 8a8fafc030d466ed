package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is the only persisted entity. Text fields are pointers so an absent
// field is written as NULL and rejected by the column constraint.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       *string   `gorm:"type:varchar(255);not null" json:"title"`
	Email       *string   `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Description *string   `gorm:"type:varchar(255);not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
