package route

import (
	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/site/system_title/controller"
	authService "inovasi_backend/internals/features/users/auth/service"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SystemTitleRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	ctrl := controller.NewSystemTitleController(db)

	g := api.Group("/system-title")
	g.Get("/active", ctrl.GetActive)

	requireAuth := authMiddleware.AuthMiddleware(db, tokens)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("judul sistem"), constants.AdminOnly...)

	g.Get("/", requireAuth, adminOnly, ctrl.GetAll)
	g.Get("/:id", requireAuth, adminOnly, ctrl.GetByID)
	g.Post("/", requireAuth, adminOnly, ctrl.Create)
	g.Patch("/:id/toggle-active", requireAuth, adminOnly, ctrl.ToggleActive)
	g.Patch("/:id", requireAuth, adminOnly, ctrl.Update)
	g.Delete("/:id", requireAuth, adminOnly, ctrl.Delete)
}
