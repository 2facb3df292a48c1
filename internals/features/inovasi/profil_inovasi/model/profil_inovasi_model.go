package model

import (
	"time"

	userModel "inovasi_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	JenisDigital    = "DIGITAL"
	JenisNonDigital = "NON_DIGITAL"
)

type ProfilInovasiModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	NamaInovasi      string         `gorm:"size:200;not null" json:"namaInovasi"`
	Inovator         string         `gorm:"size:100;not null" json:"inovator"`
	JenisInovasi     string         `gorm:"type:varchar(15);not null;index" json:"jenisInovasi"`
	BentukInovasi    string         `gorm:"size:100;not null" json:"bentukInovasi"`
	TanggalUjiCoba   datatypes.Date `gorm:"not null" json:"tanggalUjiCoba"`
	TanggalPenerapan datatypes.Date `gorm:"not null" json:"tanggalPenerapan"`
	RancangBangun    string         `gorm:"type:text;not null" json:"rancangBangun"`
	TujuanInovasi    string         `gorm:"type:text;not null" json:"tujuanInovasi"`
	ManfaatInovasi   string         `gorm:"type:text;not null" json:"manfaatInovasi"`
	HasilInovasi     string         `gorm:"type:text;not null" json:"hasilInovasi"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProfilInovasiModel) TableName() string {
	return "profil_inovasi"
}

func (m *ProfilInovasiModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
