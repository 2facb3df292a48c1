package controller

import (
	"errors"
	"log"

	"inovasi_backend/internals/features/inovasi/indikator_inovasi/dto"
	"inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/service"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"
	"inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgIndikatorNotFound = "Indikator Inovasi tidak ditemukan"
	msgIndikatorExists   = "Indikator Inovasi sudah ada untuk profil ini"
	msgNoAccess          = "Anda tidak memiliki akses ke indikator inovasi ini"
)

type IndikatorInovasiController struct {
	DB       *gorm.DB
	Uploader *upload.Uploader
}

func NewIndikatorInovasiController(db *gorm.DB, up *upload.Uploader) *IndikatorInovasiController {
	return &IndikatorInovasiController{DB: db, Uploader: up}
}

var indikatorSortColumns = map[string]string{
	"createdAt": "indikator_inovasi.created_at",
	"updatedAt": "indikator_inovasi.updated_at",
}

func (ic *IndikatorInovasiController) findProfil(c *fiber.Ctx, id uuid.UUID) (*profilModel.ProfilInovasiModel, error) {
	var p profilModel.ProfilInovasiModel
	err := ic.DB.WithContext(c.UserContext()).Preload("User").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (ic *IndikatorInovasiController) profilMap(c *fiber.Ctx, list []model.IndikatorInovasiModel) (map[uuid.UUID]*profilModel.ProfilInovasiModel, error) {
	out := map[uuid.UUID]*profilModel.ProfilInovasiModel{}
	if len(list) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ProfilInovasiID)
	}
	var profils []profilModel.ProfilInovasiModel
	if err := ic.DB.WithContext(c.UserContext()).Preload("User").Where("id IN ?", ids).Find(&profils).Error; err != nil {
		return nil, err
	}
	for i := range profils {
		out[profils[i].ID] = &profils[i]
	}
	return out, nil
}

// loadAccessible: indikator + profilnya; 404 / 403 (OPD bukan pemilik profil).
func (ic *IndikatorInovasiController) loadAccessible(c *fiber.Ctx, ac auth.Context) (*model.IndikatorInovasiModel, *profilModel.ProfilInovasiModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, nil, err
	}
	var m model.IndikatorInovasiModel
	if err := ic.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.ErrNotFound(msgIndikatorNotFound)
		}
		return nil, nil, err
	}
	profil, err := ic.findProfil(c, m.ProfilInovasiID)
	if err != nil {
		return nil, nil, err
	}
	if profil == nil || !ac.CanAccessOwned(profil.UserID) {
		return nil, nil, helper.ErrForbidden(msgNoAccess)
	}
	return &m, profil, nil
}

// GET /api/indikator-inovasi
func (ic *IndikatorInovasiController) GetAll(c *fiber.Ctx, ac auth.Context) error {
	p := helper.ParseFiber(c, "createdAt", "desc", helper.DefaultOpts)

	q := ic.DB.WithContext(c.UserContext()).
		Model(&model.IndikatorInovasiModel{}).
		Joins("JOIN profil_inovasi ON profil_inovasi.id = indikator_inovasi.profil_inovasi_id")
	if !ac.IsAdmin() {
		q = q.Where("profil_inovasi.user_id = ?", ac.UserID)
	}
	if pid, err := uuid.Parse(c.Query("profilInovasiId")); err == nil {
		q = q.Where("indikator_inovasi.profil_inovasi_id = ?", pid)
	}
	q = helper.ApplySearch(q, c.Query("search"), "profil_inovasi.nama_inovasi", "profil_inovasi.inovator")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] IndikatorInovasi count:", err)
		return helper.FromError(c, err)
	}

	var rows []model.IndikatorInovasiModel
	if err := p.Paginate(q, indikatorSortColumns, "createdAt").
		Select("indikator_inovasi.*").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] IndikatorInovasi find:", err)
		return helper.FromError(c, err)
	}

	profils, err := ic.profilMap(c, rows)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Data indikator inovasi berhasil diambil", dto.FromModelList(rows, profils), helper.BuildPagination(total, p))
}

// GET /api/indikator-inovasi/:id
func (ic *IndikatorInovasiController) GetByID(c *fiber.Ctx, ac auth.Context) error {
	m, profil, err := ic.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Data indikator inovasi berhasil diambil", dto.FromModel(m, profil))
}

// GET /api/indikator-inovasi/profil/:profilInovasiId
func (ic *IndikatorInovasiController) GetByProfil(c *fiber.Ctx, ac auth.Context) error {
	pid, err := helper.ParseUUIDParam(c, "profilInovasiId")
	if err != nil {
		return helper.FromError(c, err)
	}
	profil, err := ic.findProfil(c, pid)
	if err != nil {
		return helper.FromError(c, err)
	}
	if profil == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil Inovasi tidak ditemukan")
	}
	if !ac.CanAccessOwned(profil.UserID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke profil inovasi ini")
	}

	var m model.IndikatorInovasiModel
	if err := ic.DB.WithContext(c.UserContext()).First(&m, "profil_inovasi_id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Indikator Inovasi untuk profil ini belum ada")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Data indikator inovasi berhasil diambil", dto.FromModel(&m, profil))
}

func (ic *IndikatorInovasiController) hasIndikator(c *fiber.Ctx, profilID uuid.UUID) (bool, error) {
	var n int64
	err := ic.DB.WithContext(c.UserContext()).
		Model(&model.IndikatorInovasiModel{}).
		Where("profil_inovasi_id = ?", profilID).
		Count(&n).Error
	return n > 0, err
}

// POST /api/indikator-inovasi (multipart)
// Izin dicek sebelum file ditulis; gagal di titik mana pun → semua file yang sudah ditulis dihapus.
func (ic *IndikatorInovasiController) Create(c *fiber.Ctx, ac auth.Context) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request harus berupa multipart/form-data")
	}
	form, err := dto.ParseForm(mf)
	if err != nil {
		return helper.FromError(c, err)
	}
	profilID, err := form.ValidateCreate()
	if err != nil {
		return helper.FromError(c, err)
	}

	profil, err := ic.findProfil(c, profilID)
	if err != nil {
		return helper.FromError(c, err)
	}
	exists := false
	if profil != nil {
		if exists, err = ic.hasIndikator(c, profilID); err != nil {
			return helper.FromError(c, err)
		}
	}
	if d := service.CanUserCreateIndikator(profil, exists, ac.UserID, ac.Role); !d.CanCreate {
		return helper.FromError(c, d.Err())
	}

	sess := ic.Uploader.Begin(c.UserContext())
	defer sess.Rollback()

	m := &model.IndikatorInovasiModel{
		ProfilInovasiID:       profilID,
		KualitasInovasiDaerah: *form.KualitasInovasiDaerah,
	}
	dir := profilID.String()
	for _, ef := range model.EvidenceFields {
		rel, err := sess.Save(upload.IndikatorPolicy, dir, ef.Name, form.Files[ef.Name])
		if err != nil {
			return helper.FromError(c, err)
		}
		*ef.Ptr(m) = rel
	}

	if err := ic.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, msgIndikatorExists)
		}
		log.Println("[ERROR] Create indikator inovasi:", err)
		return helper.FromError(c, err)
	}
	sess.Commit()

	log.Printf("[SUCCESS] Indikator inovasi %s dibuat untuk profil %s", m.ID, profilID)
	return helper.JsonCreated(c, "Indikator inovasi berhasil dibuat", dto.FromModel(m, profil))
}

// PATCH /api/indikator-inovasi/:id (multipart)
// File lama dihapus setelah DB berhasil; file baru dihapus kalau gagal.
func (ic *IndikatorInovasiController) Update(c *fiber.Ctx, ac auth.Context) error {
	m, profil, err := ic.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}

	mf, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request harus berupa multipart/form-data")
	}
	form, err := dto.ParseForm(mf)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := form.ValidateUpdate(m.ProfilInovasiID); err != nil {
		return helper.FromError(c, err)
	}

	sess := ic.Uploader.Begin(c.UserContext())
	defer sess.Rollback()

	updates := map[string]any{}
	dir := m.ProfilInovasiID.String()
	for _, ef := range model.EvidenceFields {
		fh, ok := form.Files[ef.Name]
		if !ok {
			continue
		}
		rel, err := sess.Save(upload.IndikatorPolicy, dir, ef.Name, fh)
		if err != nil {
			return helper.FromError(c, err)
		}
		ptr := ef.Ptr(m)
		sess.Discard(*ptr)
		*ptr = rel
		updates[ef.Column] = rel
	}
	if form.KualitasInovasiDaerah != nil {
		m.KualitasInovasiDaerah = *form.KualitasInovasiDaerah
		updates["kualitas_inovasi_daerah"] = m.KualitasInovasiDaerah
	}

	if err := ic.DB.WithContext(c.UserContext()).
		Model(&model.IndikatorInovasiModel{ID: m.ID}).
		Updates(updates).Error; err != nil {
		log.Println("[ERROR] Update indikator inovasi:", err)
		return helper.FromError(c, err)
	}
	sess.Commit()

	return helper.JsonUpdated(c, "Indikator inovasi berhasil diperbarui", dto.FromModel(m, profil))
}

// DELETE /api/indikator-inovasi/:id: ADMIN
func (ic *IndikatorInovasiController) Delete(c *fiber.Ctx, ac auth.Context) error {
	m, _, err := ic.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ic.DB.WithContext(c.UserContext()).Delete(&model.IndikatorInovasiModel{}, "id = ?", m.ID).Error; err != nil {
		log.Println("[ERROR] Delete indikator inovasi:", err)
		return helper.FromError(c, err)
	}
	ic.Uploader.Delete(c.UserContext(), m.FilePaths()...)

	return helper.JsonDeleted(c, "Indikator inovasi berhasil dihapus", fiber.Map{"id": m.ID})
}
