package controller

import (
	"errors"
	"log"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/users/auth/dto"
	authRepo "inovasi_backend/internals/features/users/auth/repository"
	"inovasi_backend/internals/features/users/auth/service"
	userDTO "inovasi_backend/internals/features/users/user/dto"
	userModel "inovasi_backend/internals/features/users/user/model"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgBadCredentials = "Username atau password salah"

type AuthController struct {
	DB         *gorm.DB
	Tokens     *service.TokenService
	BcryptCost int
}

func NewAuthController(db *gorm.DB, tokens *service.TokenService, bcryptCost int) *AuthController {
	return &AuthController{DB: db, Tokens: tokens, BcryptCost: bcryptCost}
}

// POST /api/auth/register: selalu OPD
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	db := ac.DB.WithContext(c.UserContext())
	taken, err := authRepo.UsernameTaken(db, req.Username, nil)
	if err != nil {
		return helper.FromError(c, err)
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
	}

	hashed, err := service.HashPassword(req.Password, ac.BcryptCost)
	if err != nil {
		return helper.FromError(c, err)
	}
	user := &userModel.UserModel{
		Username: req.Username,
		Password: hashed,
		Nama:     req.Nama,
		Role:     constants.RoleOPD,
		Status:   constants.StatusAktif,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah terdaftar")
		}
		log.Println("[ERROR] Register:", err)
		return helper.FromError(c, err)
	}

	log.Printf("[SUCCESS] Registrasi user %s", user.Username)
	return helper.JsonCreated(c, "User berhasil didaftarkan", userDTO.FromModel(user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	user, err := authRepo.FindUserByUsername(ac.DB.WithContext(c.UserContext()), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
		}
		log.Println("[ERROR] Login find user:", err)
		return helper.FromError(c, err)
	}
	// password dulu, baru status akun
	if !service.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}
	if !user.IsActive() {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak aktif")
	}

	token, exp, err := ac.Tokens.Issue(service.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		log.Println("[ERROR] Login issue token:", err)
		return helper.FromError(c, err)
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		User:      userDTO.FromModel(user),
		Token:     token,
		ExpiresAt: exp,
	})
}

// GET /api/auth/profile
func (ac *AuthController) GetProfile(c *fiber.Ctx, a auth.Context) error {
	user, err := authRepo.FindUserByID(ac.DB.WithContext(c.UserContext()), a.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Data profile berhasil diambil", userDTO.FromModel(user))
}

// PUT /api/auth/profile
func (ac *AuthController) UpdateProfile(c *fiber.Ctx, a auth.Context) error {
	var req dto.UpdateProfileRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()
	if req.Nama == nil && req.Password == nil {
		return helper.FromError(c, helper.NewValidationError("nama", "Nama harus diisi"))
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, err)
	}

	db := ac.DB.WithContext(c.UserContext())
	user, err := authRepo.FindUserByID(db, a.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	updates := map[string]any{}
	if req.Nama != nil {
		user.Nama = *req.Nama
		updates["nama"] = user.Nama
	}
	if req.Password != nil {
		hashed, err := service.HashPassword(*req.Password, ac.BcryptCost)
		if err != nil {
			return helper.FromError(c, err)
		}
		updates["password"] = hashed
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		log.Println("[ERROR] UpdateProfile:", err)
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Profile berhasil diupdate", userDTO.FromModel(user))
}
