package route

import (
	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/site/kontak/controller"
	authService "inovasi_backend/internals/features/users/auth/service"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func KontakRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	ctrl := controller.NewKontakController(db)

	g := api.Group("/kontak")

	// 🔓 Public
	g.Get("/", ctrl.GetAll)
	g.Get("/:id", ctrl.GetByID)

	// 🔐 ADMIN
	requireAuth := authMiddleware.AuthMiddleware(db, tokens)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kontak"), constants.AdminOnly...)
	g.Post("/", requireAuth, adminOnly, ctrl.Create)
	g.Put("/:id", requireAuth, adminOnly, ctrl.Update)
	g.Delete("/:id", requireAuth, adminOnly, ctrl.Delete)
}
