package dto

import (
	"strings"
	"time"

	userDTO "inovasi_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20,username"`
	Password string `json:"password" validate:"required,min=8,max=100,strongpassword"`
	Nama     string `json:"nama" validate:"required,min=2,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Nama = strings.TrimSpace(r.Nama)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest: user mengubah nama dan/atau password sendiri.
type UpdateProfileRequest struct {
	Nama     *string `json:"nama" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100,strongpassword"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Nama != nil {
		v := strings.TrimSpace(*r.Nama)
		r.Nama = &v
	}
}

type LoginResponse struct {
	User      userDTO.UserResponse `json:"user"`
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expiresAt"`
}
