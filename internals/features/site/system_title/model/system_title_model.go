package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SystemTitleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:1000;not null" json:"title"`
	IsActive  bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SystemTitleModel) TableName() string {
	return "system_titles"
}

func (m *SystemTitleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
