package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"inovasi_backend/internals/constants"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	authRepo "inovasi_backend/internals/features/users/auth/repository"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/features/users/user/dto"
	"inovasi_backend/internals/features/users/user/model"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/middlewares/auth"
)

type UserController struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserController(db *gorm.DB, bcryptCost int) *UserController {
	return &UserController{DB: db, BcryptCost: bcryptCost}
}

var userSortColumns = map[string]string{
	"username":  "username",
	"nama":      "nama",
	"role":      "role",
	"status":    "status",
	"createdAt": "created_at",
}

func (uc *UserController) findUser(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	user, err := authRepo.FindUserByID(uc.DB.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Pengguna tidak ditemukan")
		}
		return nil, err
	}
	return user, nil
}

// GET /api/users/stats
func (uc *UserController) GetStats(c *fiber.Ctx, _ auth.Context) error {
	db := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	var s dto.UserStats
	counts := []struct {
		dst  *int64
		cond string
		arg  string
	}{
		{&s.Active, "status = ?", constants.StatusAktif},
		{&s.Inactive, "status = ?", constants.StatusTidakAktif},
		{&s.Admin, "role = ?", constants.RoleAdmin},
		{&s.OPD, "role = ?", constants.RoleOPD},
	}
	if err := db.Session(&gorm.Session{}).Count(&s.Total).Error; err != nil {
		return helper.FromError(c, err)
	}
	for _, q := range counts {
		if err := db.Session(&gorm.Session{}).Where(q.cond, q.arg).Count(q.dst).Error; err != nil {
			return helper.FromError(c, err)
		}
	}
	return helper.JsonOK(c, "Statistik pengguna berhasil diambil", s)
}

// GET /api/users
func (uc *UserController) GetUsers(c *fiber.Ctx, _ auth.Context) error {
	p := helper.ParseFiber(c, "createdAt", "desc", helper.DefaultOpts)

	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	q = helper.ApplySearch(q, c.Query("search"), "username", "nama")
	if role := c.Query("role"); constants.IsValidRole(role) {
		q = q.Where("role = ?", role)
	}
	if status := c.Query("status"); constants.IsValidStatus(status) {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] GetUsers count:", err)
		return helper.FromError(c, err)
	}

	var users []model.UserModel
	if err := p.Paginate(q, userSortColumns, "createdAt").Find(&users).Error; err != nil {
		log.Println("[ERROR] GetUsers find:", err)
		return helper.FromError(c, err)
	}

	counts, err := uc.profilCounts(c, users)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Data pengguna berhasil diambil", dto.FromModelList(users, counts), helper.BuildPagination(total, p))
}

func (uc *UserController) profilCounts(c *fiber.Ctx, users []model.UserModel) (map[uuid.UUID]int64, error) {
	out := map[uuid.UUID]int64{}
	if len(users) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	var rows []struct {
		UserID uuid.UUID
		N      int64
	}
	if err := uc.DB.WithContext(c.UserContext()).
		Model(&profilModel.ProfilInovasiModel{}).
		Select("user_id, COUNT(*) AS n").
		Where("user_id IN ?", ids).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.UserID] = r.N
	}
	return out, nil
}

func (uc *UserController) countProfil(c *fiber.Ctx, userID uuid.UUID) (int64, error) {
	var n int64
	err := uc.DB.WithContext(c.UserContext()).
		Model(&profilModel.ProfilInovasiModel{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx, _ auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	n, err := uc.countProfil(c, user.ID)
	if err != nil {
		return helper.FromError(c, err)
	}
	resp := dto.FromModel(user)
	resp.ProfilCount = &n
	return helper.JsonOK(c, "Data pengguna berhasil diambil", resp)
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx, _ auth.Context) error {
	var req dto.CreateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	db := uc.DB.WithContext(c.UserContext())
	taken, err := authRepo.UsernameTaken(db, req.Username, nil)
	if err != nil {
		return helper.FromError(c, err)
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
	}

	hashed, err := authService.HashPassword(req.Password, uc.BcryptCost)
	if err != nil {
		return helper.FromError(c, err)
	}
	user := req.ToModel(hashed)
	if err := authRepo.CreateUser(db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		log.Println("[ERROR] CreateUser:", err)
		return helper.FromError(c, err)
	}

	log.Printf("[SUCCESS] User %s dibuat (role=%s)", user.Username, user.Role)
	return helper.JsonCreated(c, "Pengguna berhasil dibuat", dto.FromModel(user))
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx, ac auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	// status & role akun sendiri tidak boleh diubah
	if user.ID == ac.UserID &&
		((req.Status != nil && *req.Status != user.Status) || (req.Role != nil && *req.Role != user.Role)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak dapat mengubah status akun sendiri")
	}

	db := uc.DB.WithContext(c.UserContext())
	if req.Username != nil && *req.Username != user.Username {
		taken, err := authRepo.UsernameTaken(db, *req.Username, &user.ID)
		if err != nil {
			return helper.FromError(c, err)
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
	}

	req.ApplyToModel(user)
	if err := db.Model(user).Select("username", "nama", "role", "status", "updated_at").Updates(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		log.Println("[ERROR] UpdateUser:", err)
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengguna berhasil diperbarui", dto.FromModel(user))
}

// PATCH /api/users/:id/password
func (uc *UserController) ChangePassword(c *fiber.Ctx, _ auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}
	if !authService.CheckPassword(user.Password, req.CurrentPassword) {
		return helper.FromError(c, helper.NewValidationError("currentPassword", "Password lama tidak sesuai"))
	}

	hashed, err := authService.HashPassword(req.NewPassword, uc.BcryptCost)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := authRepo.UpdateUserPassword(uc.DB.WithContext(c.UserContext()), user.ID, hashed); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}

// PATCH /api/users/:id/reset-password: password baru dikembalikan sekali.
func (uc *UserController) ResetPassword(c *fiber.Ctx, _ auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	plain, err := authService.GenerateRandomPassword(12)
	if err != nil {
		return helper.FromError(c, err)
	}
	hashed, err := authService.HashPassword(plain, uc.BcryptCost)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := authRepo.UpdateUserPassword(uc.DB.WithContext(c.UserContext()), user.ID, hashed); err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[SUCCESS] Password user %s direset", user.Username)
	return helper.JsonUpdated(c, "Password berhasil direset", fiber.Map{
		"id":          user.ID,
		"username":    user.Username,
		"newPassword": plain,
	})
}

// PATCH /api/users/:id/toggle-status
func (uc *UserController) ToggleStatus(c *fiber.Ctx, ac auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if user.ID == ac.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak dapat mengubah status akun sendiri")
	}

	newStatus := constants.StatusAktif
	if user.Status == constants.StatusAktif {
		newStatus = constants.StatusTidakAktif
	}
	if err := uc.DB.WithContext(c.UserContext()).Model(user).Update("status", newStatus).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Status pengguna berhasil diubah menjadi "+newStatus, dto.FromModel(user))
}

// DELETE /api/users/:id: punya profil → soft (TIDAK_AKTIF), selain itu hard delete.
func (uc *UserController) DeleteUser(c *fiber.Ctx, ac auth.Context) error {
	user, err := uc.findUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if user.ID == ac.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak dapat menghapus akun sendiri")
	}

	n, err := uc.countProfil(c, user.ID)
	if err != nil {
		return helper.FromError(c, err)
	}
	db := uc.DB.WithContext(c.UserContext())
	if n > 0 {
		if err := db.Model(user).Update("status", constants.StatusTidakAktif).Error; err != nil {
			return helper.FromError(c, err)
		}
		return helper.JsonDeleted(c, "Pengguna berhasil dinonaktifkan karena memiliki data terkait", fiber.Map{
			"id":          user.ID,
			"softDeleted": true,
		})
	}

	if err := db.Delete(&model.UserModel{}, "id = ?", user.ID).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Pengguna berhasil dihapus", fiber.Map{
		"id":          user.ID,
		"softDeleted": false,
	})
}
