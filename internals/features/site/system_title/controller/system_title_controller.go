package controller

import (
	"errors"

	"inovasi_backend/internals/features/site/system_title/dto"
	"inovasi_backend/internals/features/site/system_title/model"
	helper "inovasi_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgTitleNotFound = "Judul sistem tidak ditemukan"

type SystemTitleController struct {
	DB *gorm.DB
}

func NewSystemTitleController(db *gorm.DB) *SystemTitleController {
	return &SystemTitleController{DB: db}
}

var titleSortColumns = map[string]string{
	"title":     "title",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (sc *SystemTitleController) find(c *fiber.Ctx) (*model.SystemTitleModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.SystemTitleModel
	if err := sc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(msgTitleNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// GET /api/system-title/active (public)
func (sc *SystemTitleController) GetActive(c *fiber.Ctx) error {
	var rows []model.SystemTitleModel
	if err := sc.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Judul sistem aktif berhasil diambil", rows)
}

func (sc *SystemTitleController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "createdAt", "desc", helper.DefaultOpts)

	q := sc.DB.WithContext(c.UserContext()).Model(&model.SystemTitleModel{})
	q = helper.ApplySearch(q, c.Query("search"), "title")
	if active := helper.QueryBool(c, "isActive"); active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}
	var rows []model.SystemTitleModel
	if err := p.Paginate(q, titleSortColumns, "createdAt").Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Judul sistem berhasil diambil", rows, helper.BuildPagination(total, p))
}

func (sc *SystemTitleController) GetByID(c *fiber.Ctx) error {
	m, err := sc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Judul sistem berhasil diambil", m)
}

func (sc *SystemTitleController) Create(c *fiber.Ctx) error {
	var req dto.CreateSystemTitleRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	if err := sc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Judul sistem berhasil dibuat", m)
}

func (sc *SystemTitleController) Update(c *fiber.Ctx) error {
	m, err := sc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateSystemTitleRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}
	updates := req.ApplyToModel(m)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data yang diubah")
	}
	if err := sc.DB.WithContext(c.UserContext()).Model(&model.SystemTitleModel{ID: m.ID}).Updates(updates).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Judul sistem berhasil diperbarui", m)
}

func (sc *SystemTitleController) Delete(c *fiber.Ctx) error {
	m, err := sc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := sc.DB.WithContext(c.UserContext()).Delete(&model.SystemTitleModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Judul sistem berhasil dihapus", fiber.Map{"id": m.ID})
}

func (sc *SystemTitleController) ToggleActive(c *fiber.Ctx) error {
	m, err := sc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	m.IsActive = !m.IsActive
	if err := sc.DB.WithContext(c.UserContext()).Model(&model.SystemTitleModel{ID: m.ID}).Update("is_active", m.IsActive).Error; err != nil {
		return helper.FromError(c, err)
	}
	msg := "Judul sistem berhasil dinonaktifkan"
	if m.IsActive {
		msg = "Judul sistem berhasil diaktifkan"
	}
	return helper.JsonUpdated(c, msg, m)
}
