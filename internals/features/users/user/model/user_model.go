package model

import (
	"time"

	"inovasi_backend/internals/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Nama      string    `gorm:"size:100;not null" json:"nama"`
	Role      string    `gorm:"type:varchar(10);not null;default:'OPD';index" json:"role"`
	Status    string    `gorm:"type:varchar(15);not null;default:'AKTIF';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate mengisi id dan default role/status.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleOPD
	}
	if u.Status == "" {
		u.Status = constants.StatusAktif
	}
	return nil
}

func (u *UserModel) IsActive() bool { return u.Status == constants.StatusAktif }

func (u *UserModel) IsAdmin() bool { return u.Role == constants.RoleAdmin }
