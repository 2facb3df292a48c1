package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarouselImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     *string   `gorm:"size:255" json:"title"`
	Path      string    `gorm:"not null" json:"path"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sortOrder"`
	IsActive  bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CarouselImageModel) TableName() string {
	return "carousel_images"
}

func (m *CarouselImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
