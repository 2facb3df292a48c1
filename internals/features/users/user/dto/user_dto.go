package dto

import (
	"strings"
	"time"

	uModel "inovasi_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: create oleh admin
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20,username"`
	Password string `json:"password" validate:"required,min=8,max=100,strongpassword"`
	Nama     string `json:"nama" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN OPD"`
}

func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Nama = strings.TrimSpace(r.Nama)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

// ToModel: password di-hash di controller
func (r *CreateUserRequest) ToModel(hashed string) *uModel.UserModel {
	return &uModel.UserModel{
		Username: r.Username,
		Password: hashed,
		Nama:     r.Nama,
		Role:     r.Role,
	}
}

// UpdateUserRequest: partial update (nil = tidak diubah)
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=4,max=20,username"`
	Nama     *string `json:"nama" validate:"omitempty,min=2,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN OPD"`
	Status   *string `json:"status" validate:"omitempty,oneof=AKTIF TIDAK_AKTIF"`
}

func trimPtr(p *string, upper bool) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if upper {
		v = strings.ToUpper(v)
	}
	return &v
}

func (r *UpdateUserRequest) Normalize() {
	r.Username = trimPtr(r.Username, false)
	r.Nama = trimPtr(r.Nama, false)
	r.Role = trimPtr(r.Role, true)
	r.Status = trimPtr(r.Status, true)
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Nama == nil && r.Role == nil && r.Status == nil
}

// ApplyToModel: terapkan perubahan parsial ke model existing
func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel) {
	if r.Username != nil {
		m.Username = *r.Username
	}
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

// ChangePasswordRequest: admin mengganti password user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=100,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Nama        string    `json:"nama"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	ProfilCount *int64    `json:"profilCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserSummary dipakai sebagai relasi di response lain.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Nama     string    `json:"nama"`
	Role     string    `json:"role,omitempty"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Username:  m.Username,
		Nama:      m.Nama,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModelList(list []uModel.UserModel, counts map[uuid.UUID]int64) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		r := FromModel(&list[i])
		if counts != nil {
			n := counts[list[i].ID]
			r.ProfilCount = &n
		}
		out = append(out, r)
	}
	return out
}

func SummaryFromModel(m *uModel.UserModel) *UserSummary {
	if m == nil {
		return nil
	}
	return &UserSummary{ID: m.ID, Username: m.Username, Nama: m.Nama, Role: m.Role}
}

type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Admin    int64 `json:"admin"`
	OPD      int64 `json:"opd"`
}
