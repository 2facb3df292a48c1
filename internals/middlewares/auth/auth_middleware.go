package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "inovasi_backend/internals/features/users/auth/service"
)

// AuthMiddleware: token ada & valid → user ada & AKTIF → Context terpasang.
// Token hilang/rusak/kadaluarsa atau user tidak ada → 401; user TIDAK_AKTIF → 403.
func AuthMiddleware(db *gorm.DB, tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid atau sudah kadaluarsa")
		}

		user, err := loadUser(db.WithContext(c.UserContext()), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
			}
			log.Println("[ERROR] AuthMiddleware load user:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memverifikasi user")
		}
		if !user.IsActive() {
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda tidak aktif")
		}

		// role & username diambil dari DB supaya perubahan role langsung berlaku
		setCtx(c, Context{UserID: user.ID, Username: user.Username, Role: user.Role})
		return c.Next()
	}
}
