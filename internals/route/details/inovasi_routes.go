package details

import (
	indikatorRoute "inovasi_backend/internals/features/inovasi/indikator_inovasi/route"
	profilRoute "inovasi_backend/internals/features/inovasi/profil_inovasi/route"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/helpers/upload"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InovasiRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService, up *upload.Uploader) {
	profilRoute.ProfilInovasiRoutes(api, db, tokens, up)
	indikatorRoute.IndikatorInovasiRoutes(api, db, tokens, up)
}
