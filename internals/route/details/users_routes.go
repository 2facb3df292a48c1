package details

import (
	authRoute "inovasi_backend/internals/features/users/auth/route"
	authService "inovasi_backend/internals/features/users/auth/service"
	userRoute "inovasi_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	authRoute.AuthRoutes(api, db, tokens)
}

func UserRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	userRoute.UserRoutes(api, db, tokens)
}
