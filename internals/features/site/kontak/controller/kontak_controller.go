package controller

import (
	"errors"
	"log"

	"inovasi_backend/internals/features/site/kontak/dto"
	"inovasi_backend/internals/features/site/kontak/model"
	helper "inovasi_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgKontakNotFound = "Data kontak tidak ditemukan"

type KontakController struct {
	DB *gorm.DB
}

func NewKontakController(db *gorm.DB) *KontakController {
	return &KontakController{DB: db}
}

var kontakSortColumns = map[string]string{
	"namaDinas": "nama_dinas",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (kc *KontakController) find(c *fiber.Ctx) (*model.KontakModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.KontakModel
	if err := kc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(msgKontakNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// GET /api/kontak (public)
func (kc *KontakController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "createdAt", "desc", helper.DefaultOpts)

	q := kc.DB.WithContext(c.UserContext()).Model(&model.KontakModel{})
	q = helper.ApplySearch(q, c.Query("search"), "nama_dinas", "alamat", "email")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}
	var rows []model.KontakModel
	if err := p.Paginate(q, kontakSortColumns, "createdAt").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Kontak find:", err)
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Data kontak berhasil diambil", rows, helper.BuildPagination(total, p))
}

// GET /api/kontak/:id (public)
func (kc *KontakController) GetByID(c *fiber.Ctx) error {
	m, err := kc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Data kontak berhasil diambil", m)
}

func (kc *KontakController) Create(c *fiber.Ctx) error {
	var req dto.CreateKontakRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}
	m := req.ToModel()
	if err := kc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create kontak:", err)
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Data kontak berhasil dibuat", m)
}

func (kc *KontakController) Update(c *fiber.Ctx) error {
	m, err := kc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateKontakRequest
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
	if err := kc.DB.WithContext(c.UserContext()).Model(&model.KontakModel{ID: m.ID}).Updates(updates).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Data kontak berhasil diperbarui", m)
}

func (kc *KontakController) Delete(c *fiber.Ctx) error {
	m, err := kc.find(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := kc.DB.WithContext(c.UserContext()).Delete(&model.KontakModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Data kontak berhasil dihapus", fiber.Map{"id": m.ID})
}
