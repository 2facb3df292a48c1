package route

import (
	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/inovasi/indikator_inovasi/controller"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/helpers/upload"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IndikatorInovasiRoutes: /api/indikator-inovasi (ADMIN, OPD)
func IndikatorInovasiRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService, up *upload.Uploader) {
	ctrl := controller.NewIndikatorInovasiController(db, up)

	g := api.Group("/indikator-inovasi",
		authMiddleware.AuthMiddleware(db, tokens),
		authMiddleware.OnlyRoles(constants.RoleErrorUser("indikator inovasi"), constants.AllRoles...),
	)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("hapus indikator inovasi"), constants.AdminOnly...)

	g.Get("/", authMiddleware.With(ctrl.GetAll))
	g.Get("/profil/:profilInovasiId", authMiddleware.With(ctrl.GetByProfil))
	g.Get("/:id", authMiddleware.With(ctrl.GetByID))
	g.Post("/", authMiddleware.With(ctrl.Create))
	g.Patch("/:id", authMiddleware.With(ctrl.Update))
	g.Delete("/:id", adminOnly, authMiddleware.With(ctrl.Delete))
}
