package controller

import (
	"errors"
	"log"

	"inovasi_backend/internals/features/site/carousel/dto"
	"inovasi_backend/internals/features/site/carousel/model"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	carouselDir         = "carousel"
	msgCarouselNotFound = "Gambar carousel tidak ditemukan"
)

type CarouselController struct {
	DB       *gorm.DB
	Uploader *upload.Uploader
	Policy   upload.Policy
}

func NewCarouselController(db *gorm.DB, up *upload.Uploader, policy upload.Policy) *CarouselController {
	return &CarouselController{DB: db, Uploader: up, Policy: policy}
}

var carouselSortColumns = map[string]string{
	"sortOrder": "sort_order",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (cc *CarouselController) find(c *fiber.Ctx) (*model.CarouselImageModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.CarouselImageModel
	if err := cc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(msgCarouselNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// GET /api/carousel/active (public)
func (cc *CarouselController) GetActive(c *fiber.Ctx) error {
	var rows []model.CarouselImageModel
	if err := cc.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("sort_order ASC").Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Gambar carousel aktif berhasil diambil", dto.FromModelList(rows))
}

// GET /api/carousel
func (cc *CarouselController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "sortOrder", "asc", helper.DefaultOpts)

	q := cc.DB.WithContext(c.UserContext()).Model(&model.CarouselImageModel{})
	q = helper.ApplySearch(q, c.Query("search"), "title")
	if active := helper.QueryBool(c, "isActive"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}
	var rows []model.CarouselImageModel
	if err := p.Paginate(q, carouselSortColumns, "sortOrder").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Carousel find:", err)
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Gambar carousel berhasil diambil", dto.FromModelList(rows), helper.BuildPagination(total, p))
}

// GET /api/carousel/:id
func (cc *CarouselController) GetByID(c *fiber.Ctx) error {
	m, err := cc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Gambar carousel berhasil diambil", dto.FromModel(m))
}

// POST /api/carousel (multipart: image + title/sortOrder/isActive)
func (cc *CarouselController) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.FromError(c, helper.NewValidationError("image", "File gambar wajib diunggah"))
	}
	form, err := dto.ParseCarouselForm(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	sess := cc.Uploader.Begin(c.UserContext())
	defer sess.Rollback()

	rel, err := sess.Save(cc.Policy, carouselDir, "image", fh)
	if err != nil {
		return helper.FromError(c, err)
	}

	m := form.ToModel(rel)
	if err := cc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create carousel:", err)
		return helper.FromError(c, err)
	}
	sess.Commit()

	return helper.JsonCreated(c, "Gambar carousel berhasil ditambahkan", dto.FromModel(m))
}

// PATCH /api/carousel/:id: gambar baru opsional; file lama dihapus setelah commit.
func (cc *CarouselController) Update(c *fiber.Ctx) error {
	m, err := cc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	form, err := dto.ParseCarouselForm(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	fh, _ := c.FormFile("image")
	if fh == nil && form.IsEmpty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data yang diubah")
	}

	sess := cc.Uploader.Begin(c.UserContext())
	defer sess.Rollback()

	updates := form.Updates(m)
	if fh != nil {
		rel, err := sess.Save(cc.Policy, carouselDir, "image", fh)
		if err != nil {
			return helper.FromError(c, err)
		}
		sess.Discard(m.Path)
		m.Path = rel
		updates["path"] = rel
	}

	if err := cc.DB.WithContext(c.UserContext()).
		Model(&model.CarouselImageModel{ID: m.ID}).
		Updates(updates).Error; err != nil {
		log.Println("[ERROR] Update carousel:", err)
		return helper.FromError(c, err)
	}
	sess.Commit()

	return helper.JsonUpdated(c, "Gambar carousel berhasil diperbarui", dto.FromModel(m))
}

// DELETE /api/carousel/:id
func (cc *CarouselController) Delete(c *fiber.Ctx) error {
	m, err := cc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := cc.DB.WithContext(c.UserContext()).Delete(&model.CarouselImageModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.FromError(c, err)
	}
	cc.Uploader.Delete(c.UserContext(), m.Path)
	return helper.JsonDeleted(c, "Gambar carousel berhasil dihapus", fiber.Map{"id": m.ID})
}

// PATCH /api/carousel/sort-order/update: satu transaksi; id tak dikenal → 404, tidak ada yang berubah.
func (cc *CarouselController) UpdateSortOrder(c *fiber.Ctx) error {
	var req dto.UpdateSortOrderRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	err := cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, item := range req.ImageOrders {
			id, err := uuid.Parse(item.ID)
			if err != nil {
				return helper.NewValidationError("imageOrders", "ID carousel tidak valid: "+item.ID)
			}
			res := tx.Model(&model.CarouselImageModel{}).Where("id = ?", id).Update("sort_order", *item.SortOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return helper.ErrNotFound(msgCarouselNotFound + ": " + item.ID)
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Urutan carousel berhasil diperbarui", nil)
}

// PATCH /api/carousel/:id/toggle-active
func (cc *CarouselController) ToggleActive(c *fiber.Ctx) error {
	m, err := cc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	m.IsActive = !m.IsActive
	if err := cc.DB.WithContext(c.UserContext()).
		Model(&model.CarouselImageModel{ID: m.ID}).
		Update("is_active", m.IsActive).Error; err != nil {
		return helper.FromError(c, err)
	}
	msg := "Gambar carousel berhasil dinonaktifkan"
	if m.IsActive {
		msg = "Gambar carousel berhasil diaktifkan"
	}
	return helper.JsonUpdated(c, msg, dto.FromModel(m))
}
