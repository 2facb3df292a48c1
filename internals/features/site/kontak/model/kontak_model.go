package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KontakModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NamaDinas string    `gorm:"size:255;not null" json:"namaDinas"`
	Alamat    string    `gorm:"type:text;not null" json:"alamat"`
	Telepon   string    `gorm:"size:50;not null" json:"telepon"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	KodePos   string    `gorm:"size:10;not null" json:"kodePos"`
	Latitude  string    `gorm:"size:30;not null" json:"latitude"`
	Longitude string    `gorm:"size:30;not null" json:"longitude"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (KontakModel) TableName() string {
	return "kontak"
}

func (m *KontakModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
