package dto

import (
	"strconv"
	"strings"
	"time"

	"inovasi_backend/internals/features/site/carousel/model"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CarouselForm: field teks dari multipart (nil = tidak dikirim).
type CarouselForm struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	SortOrder *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive  *bool   `json:"isActive"`
}

// formValue: nilai field dari multipart atau urlencoded; ok=false kalau tidak dikirim.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		if v, ok := mf.Value[key]; ok && len(v) > 0 {
			return strings.TrimSpace(v[0]), true
		}
		return "", false
	}
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return "", false
	}
	return strings.TrimSpace(string(args.Peek(key))), true
}

// ParseCarouselForm membaca title/sortOrder/isActive dari form.
func ParseCarouselForm(c *fiber.Ctx) (*CarouselForm, error) {
	f := &CarouselForm{}
	ve := &helper.ValidationError{Message: "Validasi gagal"}

	if v, ok := formValue(c, "title"); ok {
		f.Title = &v
	}
	if v, ok := formValue(c, "sortOrder"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			ve.Add("sortOrder", "sortOrder harus berupa angka")
		} else {
			f.SortOrder = &n
		}
	}
	if v, ok := formValue(c, "isActive"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			ve.Add("isActive", "isActive harus true atau false")
		} else {
			f.IsActive = &b
		}
	}
	if ve.HasErrors() {
		return nil, ve
	}
	if err := helper.ValidateStruct(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *CarouselForm) IsEmpty() bool {
	return f.Title == nil && f.SortOrder == nil && f.IsActive == nil
}

// ToModel: default sortOrder 0, isActive true.
func (f *CarouselForm) ToModel(path string) *model.CarouselImageModel {
	m := &model.CarouselImageModel{Path: path, IsActive: true, Title: f.Title}
	if f.SortOrder != nil {
		m.SortOrder = *f.SortOrder
	}
	if f.IsActive != nil {
		m.IsActive = *f.IsActive
	}
	return m
}

// Updates: kolom yang berubah saja.
func (f *CarouselForm) Updates(m *model.CarouselImageModel) map[string]any {
	out := map[string]any{}
	if f.Title != nil {
		m.Title = f.Title
		out["title"] = *f.Title
	}
	if f.SortOrder != nil {
		m.SortOrder = *f.SortOrder
		out["sort_order"] = *f.SortOrder
	}
	if f.IsActive != nil {
		m.IsActive = *f.IsActive
		out["is_active"] = *f.IsActive
	}
	return out
}

type ImageOrder struct {
	ID        string `json:"id" validate:"required,uuid"`
	SortOrder *int   `json:"sortOrder" validate:"required,gte=0"`
}

type UpdateSortOrderRequest struct {
	ImageOrders []ImageOrder `json:"imageOrders" validate:"required,min=1,dive"`
}

/* =========================
   RESPONSE
   ========================= */

type CarouselResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(m *model.CarouselImageModel) CarouselResponse {
	return CarouselResponse{
		ID:        m.ID,
		Title:     m.Title,
		Path:      m.Path,
		URL:       upload.PublicURL(m.Path),
		SortOrder: m.SortOrder,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModelList(list []model.CarouselImageModel) []CarouselResponse {
	out := make([]CarouselResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
