package dto

import (
	"strings"

	"inovasi_backend/internals/features/site/system_title/model"
)

type CreateSystemTitleRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=1000"`
	IsActive *bool  `json:"isActive"`
}

func (r *CreateSystemTitleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r *CreateSystemTitleRequest) ToModel() *model.SystemTitleModel {
	m := &model.SystemTitleModel{Title: r.Title, IsActive: true}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateSystemTitleRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=1000"`
	IsActive *bool   `json:"isActive"`
}

func (r *UpdateSystemTitleRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
}

// ApplyToModel mengembalikan kolom yang berubah.
func (r *UpdateSystemTitleRequest) ApplyToModel(m *model.SystemTitleModel) map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		m.Title = *r.Title
		out["title"] = m.Title
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
		out["is_active"] = m.IsActive
	}
	return out
}
