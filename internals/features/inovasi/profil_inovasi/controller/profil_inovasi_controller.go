package controller

import (
	"errors"
	"log"

	indikatorModel "inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/dto"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/service"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"
	"inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgProfilNotFound = "Profil Inovasi tidak ditemukan"
	msgProfilNoAccess = "Anda tidak memiliki akses ke profil inovasi ini"
)

type ProfilInovasiController struct {
	DB       *gorm.DB
	Uploader *upload.Uploader
}

func NewProfilInovasiController(db *gorm.DB, up *upload.Uploader) *ProfilInovasiController {
	return &ProfilInovasiController{DB: db, Uploader: up}
}

var profilSortColumns = map[string]string{
	"namaInovasi":      "nama_inovasi",
	"inovator":         "inovator",
	"jenisInovasi":     "jenis_inovasi",
	"tanggalPenerapan": "tanggal_penerapan",
	"createdAt":        "created_at",
}

// indikatorIDs: profil_id → indikator_id untuk profil yang sudah punya indikator.
func (pc *ProfilInovasiController) indikatorIDs(c *fiber.Ctx, profilIDs ...uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	out := map[uuid.UUID]uuid.UUID{}
	if len(profilIDs) == 0 {
		return out, nil
	}
	var rows []indikatorModel.IndikatorInovasiModel
	if err := pc.DB.WithContext(c.UserContext()).
		Select("id", "profil_inovasi_id").
		Where("profil_inovasi_id IN ?", profilIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ProfilInovasiID] = r.ID
	}
	return out, nil
}

// loadAccessible: 404 kalau tidak ada, 403 kalau OPD bukan pemilik.
func (pc *ProfilInovasiController) loadAccessible(c *fiber.Ctx, ac auth.Context) (*model.ProfilInovasiModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var p model.ProfilInovasiModel
	if err := pc.DB.WithContext(c.UserContext()).Preload("User").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(msgProfilNotFound)
		}
		return nil, err
	}
	if !ac.CanAccessOwned(p.UserID) {
		return nil, helper.ErrForbidden(msgProfilNoAccess)
	}
	return &p, nil
}

func (pc *ProfilInovasiController) respond(c *fiber.Ctx, p *model.ProfilInovasiModel) (dto.ProfilInovasiResponse, error) {
	ids, err := pc.indikatorIDs(c, p.ID)
	if err != nil {
		return dto.ProfilInovasiResponse{}, err
	}
	var ind *uuid.UUID
	if v, ok := ids[p.ID]; ok {
		ind = &v
	}
	return dto.FromModel(p, ind), nil
}

// GET /api/profil-inovasi
func (pc *ProfilInovasiController) GetAll(c *fiber.Ctx, ac auth.Context) error {
	p := helper.ParseFiber(c, "createdAt", "desc", helper.DefaultOpts)

	q := pc.DB.WithContext(c.UserContext()).Model(&model.ProfilInovasiModel{})
	if !ac.IsAdmin() {
		q = q.Where("user_id = ?", ac.UserID)
	} else if uid, err := uuid.Parse(c.Query("userId")); err == nil {
		q = q.Where("user_id = ?", uid)
	}
	q = helper.ApplySearch(q, c.Query("search"), "nama_inovasi", "inovator", "bentuk_inovasi")
	switch jenis := c.Query("jenisInovasi"); jenis {
	case model.JenisDigital, model.JenisNonDigital:
		q = q.Where("jenis_inovasi = ?", jenis)
	}

	const hasIndikator = "EXISTS (SELECT 1 FROM indikator_inovasi i WHERE i.profil_inovasi_id = profil_inovasi.id)"
	switch c.Query("stage") {
	case service.StageComplete:
		q = q.Where(hasIndikator)
	case service.StageProfilOnly:
		q = q.Where("NOT " + hasIndikator)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] ProfilInovasi count:", err)
		return helper.FromError(c, err)
	}

	var rows []model.ProfilInovasiModel
	if err := p.Paginate(q, profilSortColumns, "createdAt").Preload("User").Find(&rows).Error; err != nil {
		log.Println("[ERROR] ProfilInovasi find:", err)
		return helper.FromError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	indIDs, err := pc.indikatorIDs(c, ids...)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Data profil inovasi berhasil diambil", dto.FromModelList(rows, indIDs), helper.BuildPagination(total, p))
}

// GET /api/profil-inovasi/:id
func (pc *ProfilInovasiController) GetByID(c *fiber.Ctx, ac auth.Context) error {
	profil, err := pc.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}
	resp, err := pc.respond(c, profil)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Data profil inovasi berhasil diambil", resp)
}

// POST /api/profil-inovasi: userId diambil dari token
func (pc *ProfilInovasiController) Create(c *fiber.Ctx, ac auth.Context) error {
	var req dto.CreateProfilInovasiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	uji, terap, err := req.Validate()
	if err != nil {
		return helper.FromError(c, err)
	}

	profil := req.ToModel(ac.UserID, uji, terap)
	db := pc.DB.WithContext(c.UserContext())
	if err := db.Create(profil).Error; err != nil {
		log.Println("[ERROR] Create profil inovasi:", err)
		return helper.FromError(c, err)
	}
	if err := db.Preload("User").First(profil, "id = ?", profil.ID).Error; err != nil {
		return helper.FromError(c, err)
	}

	log.Printf("[SUCCESS] Profil inovasi %s dibuat oleh %s", profil.ID, ac.Username)
	return helper.JsonCreated(c, "Profil inovasi berhasil dibuat", dto.FromModel(profil, nil))
}

// PATCH /api/profil-inovasi/:id: pemilik atau ADMIN
func (pc *ProfilInovasiController) Update(c *fiber.Ctx, ac auth.Context) error {
	profil, err := pc.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateProfilInovasiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if req.IsEmpty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data yang diubah")
	}
	if err := req.ApplyToModel(profil); err != nil {
		return helper.FromError(c, err)
	}

	// map, bukan struct: relasi User tidak ikut tersimpan
	if err := pc.DB.WithContext(c.UserContext()).
		Model(&model.ProfilInovasiModel{ID: profil.ID}).
		Updates(map[string]any{
			"nama_inovasi":      profil.NamaInovasi,
			"inovator":          profil.Inovator,
			"jenis_inovasi":     profil.JenisInovasi,
			"bentuk_inovasi":    profil.BentukInovasi,
			"tanggal_uji_coba":  profil.TanggalUjiCoba,
			"tanggal_penerapan": profil.TanggalPenerapan,
			"rancang_bangun":    profil.RancangBangun,
			"tujuan_inovasi":    profil.TujuanInovasi,
			"manfaat_inovasi":   profil.ManfaatInovasi,
			"hasil_inovasi":     profil.HasilInovasi,
		}).Error; err != nil {
		log.Println("[ERROR] Update profil inovasi:", err)
		return helper.FromError(c, err)
	}

	resp, err := pc.respond(c, profil)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Profil inovasi berhasil diperbarui", resp)
}

// DELETE /api/profil-inovasi/:id: ADMIN; indikator & file-nya ikut terhapus.
func (pc *ProfilInovasiController) Delete(c *fiber.Ctx, ac auth.Context) error {
	profil, err := pc.loadAccessible(c, ac)
	if err != nil {
		return helper.FromError(c, err)
	}

	var files []string
	err = pc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var ind indikatorModel.IndikatorInovasiModel
		err := tx.Where("profil_inovasi_id = ?", profil.ID).First(&ind).Error
		switch {
		case err == nil:
			files = ind.FilePaths()
			if err := tx.Delete(&ind).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Delete(&model.ProfilInovasiModel{}, "id = ?", profil.ID).Error
	})
	if err != nil {
		log.Println("[ERROR] Delete profil inovasi:", err)
		return helper.FromError(c, err)
	}

	// file dihapus setelah DB commit
	pc.Uploader.Delete(c.UserContext(), files...)
	pc.Uploader.DeleteDir(c.UserContext(), profil.ID.String())

	return helper.JsonDeleted(c, "Profil inovasi berhasil dihapus", fiber.Map{"id": profil.ID})
}
