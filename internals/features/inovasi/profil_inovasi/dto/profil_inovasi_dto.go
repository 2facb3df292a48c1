package dto

import (
	"strings"
	"time"

	"inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/service"
	userDTO "inovasi_backend/internals/features/users/user/dto"
	helper "inovasi_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate menerima YYYY-MM-DD atau RFC3339; hasilnya tanggal (UTC, jam 00:00).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

/* =========================
   CREATE
   ========================= */

type CreateProfilInovasiRequest struct {
	NamaInovasi      string `json:"namaInovasi" validate:"required,min=3,max=200"`
	Inovator         string `json:"inovator" validate:"required,min=2,max=100"`
	JenisInovasi     string `json:"jenisInovasi" validate:"required,oneof=DIGITAL NON_DIGITAL"`
	BentukInovasi    string `json:"bentukInovasi" validate:"required,min=3,max=100"`
	TanggalUjiCoba   string `json:"tanggalUjiCoba" validate:"required"`
	TanggalPenerapan string `json:"tanggalPenerapan" validate:"required"`
	RancangBangun    string `json:"rancangBangun" validate:"required,min=300,max=5000"`
	TujuanInovasi    string `json:"tujuanInovasi" validate:"required,min=10,max=2000"`
	ManfaatInovasi   string `json:"manfaatInovasi" validate:"required,min=10,max=2000"`
	HasilInovasi     string `json:"hasilInovasi" validate:"required,min=10,max=2000"`
}

func (r *CreateProfilInovasiRequest) Normalize() {
	r.NamaInovasi = strings.TrimSpace(r.NamaInovasi)
	r.Inovator = strings.TrimSpace(r.Inovator)
	r.JenisInovasi = strings.ToUpper(strings.TrimSpace(r.JenisInovasi))
	r.BentukInovasi = strings.TrimSpace(r.BentukInovasi)
	r.RancangBangun = strings.TrimSpace(r.RancangBangun)
	r.TujuanInovasi = strings.TrimSpace(r.TujuanInovasi)
	r.ManfaatInovasi = strings.TrimSpace(r.ManfaatInovasi)
	r.HasilInovasi = strings.TrimSpace(r.HasilInovasi)
}

// Validate: aturan field + format tanggal + urutan tanggal.
func (r *CreateProfilInovasiRequest) Validate() (uji, terap time.Time, err error) {
	if err = helper.ValidateStruct(r); err != nil {
		return
	}
	ve := &helper.ValidationError{Message: "Validasi gagal"}
	var ok bool
	if uji, ok = ParseDate(r.TanggalUjiCoba); !ok {
		ve.Add("tanggalUjiCoba", "Format tanggal uji coba tidak valid")
	}
	if terap, ok = ParseDate(r.TanggalPenerapan); !ok {
		ve.Add("tanggalPenerapan", "Format tanggal penerapan tidak valid")
	}
	if !ve.HasErrors() && uji.After(terap) {
		ve.Add("tanggalPenerapan", msgDateOrder)
	}
	err = ve.ErrOrNil()
	return
}

const msgDateOrder = "Tanggal uji coba harus sebelum atau sama dengan tanggal penerapan"

func (r *CreateProfilInovasiRequest) ToModel(userID uuid.UUID, uji, terap time.Time) *model.ProfilInovasiModel {
	return &model.ProfilInovasiModel{
		NamaInovasi:      r.NamaInovasi,
		Inovator:         r.Inovator,
		JenisInovasi:     r.JenisInovasi,
		BentukInovasi:    r.BentukInovasi,
		TanggalUjiCoba:   datatypes.Date(uji),
		TanggalPenerapan: datatypes.Date(terap),
		RancangBangun:    r.RancangBangun,
		TujuanInovasi:    r.TujuanInovasi,
		ManfaatInovasi:   r.ManfaatInovasi,
		HasilInovasi:     r.HasilInovasi,
		UserID:           userID,
	}
}

/* =========================
   UPDATE (partial)
   ========================= */

// UpdateProfilInovasiRequest: nil = tidak diubah. userId tidak bisa diubah.
type UpdateProfilInovasiRequest struct {
	NamaInovasi      *string `json:"namaInovasi" validate:"omitempty,min=3,max=200"`
	Inovator         *string `json:"inovator" validate:"omitempty,min=2,max=100"`
	JenisInovasi     *string `json:"jenisInovasi" validate:"omitempty,oneof=DIGITAL NON_DIGITAL"`
	BentukInovasi    *string `json:"bentukInovasi" validate:"omitempty,min=3,max=100"`
	TanggalUjiCoba   *string `json:"tanggalUjiCoba"`
	TanggalPenerapan *string `json:"tanggalPenerapan"`
	RancangBangun    *string `json:"rancangBangun" validate:"omitempty,min=300,max=5000"`
	TujuanInovasi    *string `json:"tujuanInovasi" validate:"omitempty,min=10,max=2000"`
	ManfaatInovasi   *string `json:"manfaatInovasi" validate:"omitempty,min=10,max=2000"`
	HasilInovasi     *string `json:"hasilInovasi" validate:"omitempty,min=10,max=2000"`
}

func trim(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func (r *UpdateProfilInovasiRequest) Normalize() {
	r.NamaInovasi = trim(r.NamaInovasi)
	r.Inovator = trim(r.Inovator)
	r.BentukInovasi = trim(r.BentukInovasi)
	r.TanggalUjiCoba = trim(r.TanggalUjiCoba)
	r.TanggalPenerapan = trim(r.TanggalPenerapan)
	r.RancangBangun = trim(r.RancangBangun)
	r.TujuanInovasi = trim(r.TujuanInovasi)
	r.ManfaatInovasi = trim(r.ManfaatInovasi)
	r.HasilInovasi = trim(r.HasilInovasi)
	if r.JenisInovasi != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.JenisInovasi))
		r.JenisInovasi = &v
	}
}

func (r *UpdateProfilInovasiRequest) IsEmpty() bool {
	return r.NamaInovasi == nil && r.Inovator == nil && r.JenisInovasi == nil &&
		r.BentukInovasi == nil && r.TanggalUjiCoba == nil && r.TanggalPenerapan == nil &&
		r.RancangBangun == nil && r.TujuanInovasi == nil && r.ManfaatInovasi == nil &&
		r.HasilInovasi == nil
}

// ApplyToModel memvalidasi field yang dikirim lalu menggabungkannya ke m.
// Urutan tanggal dicek pada hasil gabungan.
func (r *UpdateProfilInovasiRequest) ApplyToModel(m *model.ProfilInovasiModel) error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	ve := &helper.ValidationError{Message: "Validasi gagal"}

	uji := time.Time(m.TanggalUjiCoba)
	terap := time.Time(m.TanggalPenerapan)
	if r.TanggalUjiCoba != nil {
		t, ok := ParseDate(*r.TanggalUjiCoba)
		if !ok {
			ve.Add("tanggalUjiCoba", "Format tanggal uji coba tidak valid")
		}
		uji = t
	}
	if r.TanggalPenerapan != nil {
		t, ok := ParseDate(*r.TanggalPenerapan)
		if !ok {
			ve.Add("tanggalPenerapan", "Format tanggal penerapan tidak valid")
		}
		terap = t
	}
	if ve.HasErrors() {
		return ve
	}
	if uji.After(terap) {
		return helper.NewValidationError("tanggalPenerapan", msgDateOrder)
	}

	if r.NamaInovasi != nil {
		m.NamaInovasi = *r.NamaInovasi
	}
	if r.Inovator != nil {
		m.Inovator = *r.Inovator
	}
	if r.JenisInovasi != nil {
		m.JenisInovasi = *r.JenisInovasi
	}
	if r.BentukInovasi != nil {
		m.BentukInovasi = *r.BentukInovasi
	}
	m.TanggalUjiCoba = datatypes.Date(uji)
	m.TanggalPenerapan = datatypes.Date(terap)
	if r.RancangBangun != nil {
		m.RancangBangun = *r.RancangBangun
	}
	if r.TujuanInovasi != nil {
		m.TujuanInovasi = *r.TujuanInovasi
	}
	if r.ManfaatInovasi != nil {
		m.ManfaatInovasi = *r.ManfaatInovasi
	}
	if r.HasilInovasi != nil {
		m.HasilInovasi = *r.HasilInovasi
	}
	return nil
}

/* =========================
   RESPONSE
   ========================= */

type ProfilInovasiResponse struct {
	ID               uuid.UUID             `json:"id"`
	NamaInovasi      string                `json:"namaInovasi"`
	Inovator         string                `json:"inovator"`
	JenisInovasi     string                `json:"jenisInovasi"`
	BentukInovasi    string                `json:"bentukInovasi"`
	TanggalUjiCoba   string                `json:"tanggalUjiCoba"`
	TanggalPenerapan string                `json:"tanggalPenerapan"`
	RancangBangun    string                `json:"rancangBangun"`
	TujuanInovasi    string                `json:"tujuanInovasi"`
	ManfaatInovasi   string                `json:"manfaatInovasi"`
	HasilInovasi     string                `json:"hasilInovasi"`
	UserID           uuid.UUID             `json:"userId"`
	User             *userDTO.UserSummary  `json:"user,omitempty"`
	IndikatorID      *uuid.UUID            `json:"indikatorInovasiId,omitempty"`
	Status           service.InovasiStatus `json:"status"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// FromModel: indikatorID nil kalau profil belum punya indikator.
func FromModel(m *model.ProfilInovasiModel, indikatorID *uuid.UUID) ProfilInovasiResponse {
	return ProfilInovasiResponse{
		ID:               m.ID,
		NamaInovasi:      m.NamaInovasi,
		Inovator:         m.Inovator,
		JenisInovasi:     m.JenisInovasi,
		BentukInovasi:    m.BentukInovasi,
		TanggalUjiCoba:   time.Time(m.TanggalUjiCoba).Format(DateLayout),
		TanggalPenerapan: time.Time(m.TanggalPenerapan).Format(DateLayout),
		RancangBangun:    m.RancangBangun,
		TujuanInovasi:    m.TujuanInovasi,
		ManfaatInovasi:   m.ManfaatInovasi,
		HasilInovasi:     m.HasilInovasi,
		UserID:           m.UserID,
		User:             userDTO.SummaryFromModel(m.User),
		IndikatorID:      indikatorID,
		Status:           service.DeriveStatus(m, indikatorID != nil),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModelList(list []model.ProfilInovasiModel, indikatorIDs map[uuid.UUID]uuid.UUID) []ProfilInovasiResponse {
	out := make([]ProfilInovasiResponse, 0, len(list))
	for i := range list {
		var ind *uuid.UUID
		if id, ok := indikatorIDs[list[i].ID]; ok {
			ind = &id
		}
		out = append(out, FromModel(&list[i], ind))
	}
	return out
}

// ProfilSummary dipakai sebagai relasi di response indikator.
type ProfilSummary struct {
	ID           uuid.UUID            `json:"id"`
	NamaInovasi  string               `json:"namaInovasi"`
	Inovator     string               `json:"inovator"`
	JenisInovasi string               `json:"jenisInovasi"`
	UserID       uuid.UUID            `json:"userId"`
	User         *userDTO.UserSummary `json:"user,omitempty"`
}

func SummaryFromModel(m *model.ProfilInovasiModel) *ProfilSummary {
	if m == nil {
		return nil
	}
	return &ProfilSummary{
		ID:           m.ID,
		NamaInovasi:  m.NamaInovasi,
		Inovator:     m.Inovator,
		JenisInovasi: m.JenisInovasi,
		UserID:       m.UserID,
		User:         userDTO.SummaryFromModel(m.User),
	}
}
