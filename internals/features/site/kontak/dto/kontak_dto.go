package dto

import (
	"strings"

	"inovasi_backend/internals/features/site/kontak/model"
)

type CreateKontakRequest struct {
	NamaDinas string `json:"namaDinas" validate:"required,max=255"`
	Alamat    string `json:"alamat" validate:"required"`
	Telepon   string `json:"telepon" validate:"required,max=50,phone"`
	Email     string `json:"email" validate:"required,email"`
	KodePos   string `json:"kodePos" validate:"required,max=10,digits"`
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

func (r *CreateKontakRequest) Normalize() {
	r.NamaDinas = strings.TrimSpace(r.NamaDinas)
	r.Alamat = strings.TrimSpace(r.Alamat)
	r.Telepon = strings.TrimSpace(r.Telepon)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.KodePos = strings.TrimSpace(r.KodePos)
	r.Latitude = strings.TrimSpace(r.Latitude)
	r.Longitude = strings.TrimSpace(r.Longitude)
}

func (r *CreateKontakRequest) ToModel() *model.KontakModel {
	return &model.KontakModel{
		NamaDinas: r.NamaDinas,
		Alamat:    r.Alamat,
		Telepon:   r.Telepon,
		Email:     r.Email,
		KodePos:   r.KodePos,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// UpdateKontakRequest: partial, nil = tidak diubah.
type UpdateKontakRequest struct {
	NamaDinas *string `json:"namaDinas" validate:"omitempty,min=1,max=255"`
	Alamat    *string `json:"alamat" validate:"omitempty,min=1"`
	Telepon   *string `json:"telepon" validate:"omitempty,max=50,phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	KodePos   *string `json:"kodePos" validate:"omitempty,max=10,digits"`
	Latitude  *string `json:"latitude" validate:"omitempty,latitude"`
	Longitude *string `json:"longitude" validate:"omitempty,longitude"`
}

func (r *UpdateKontakRequest) Normalize() {
	for _, p := range []**string{&r.NamaDinas, &r.Alamat, &r.Telepon, &r.Email, &r.KodePos, &r.Latitude, &r.Longitude} {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	if r.Email != nil {
		v := strings.ToLower(*r.Email)
		r.Email = &v
	}
}

// ApplyToModel mengembalikan kolom yang berubah.
func (r *UpdateKontakRequest) ApplyToModel(m *model.KontakModel) map[string]any {
	out := map[string]any{}
	set := func(col string, src *string, dst *string) {
		if src != nil {
			*dst = *src
			out[col] = *src
		}
	}
	set("nama_dinas", r.NamaDinas, &m.NamaDinas)
	set("alamat", r.Alamat, &m.Alamat)
	set("telepon", r.Telepon, &m.Telepon)
	set("email", r.Email, &m.Email)
	set("kode_pos", r.KodePos, &m.KodePos)
	set("latitude", r.Latitude, &m.Latitude)
	set("longitude", r.Longitude, &m.Longitude)
	return out
}
