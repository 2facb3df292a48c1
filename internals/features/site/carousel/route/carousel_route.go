package route

import (
	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/site/carousel/controller"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/helpers/upload"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CarouselRoutes: /api/carousel. /active publik, sisanya ADMIN.
func CarouselRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService, up *upload.Uploader, policy upload.Policy) {
	ctrl := controller.NewCarouselController(db, up, policy)

	g := api.Group("/carousel")
	g.Get("/active", ctrl.GetActive)

	requireAuth := authMiddleware.AuthMiddleware(db, tokens)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("carousel"), constants.AdminOnly...)

	g.Get("/", requireAuth, adminOnly, ctrl.GetAll)
	g.Patch("/sort-order/update", requireAuth, adminOnly, ctrl.UpdateSortOrder)
	g.Get("/:id", requireAuth, adminOnly, ctrl.GetByID)
	g.Post("/", requireAuth, adminOnly, ctrl.Create)
	g.Patch("/:id/toggle-active", requireAuth, adminOnly, ctrl.ToggleActive)
	g.Patch("/:id", requireAuth, adminOnly, ctrl.Update)
	g.Delete("/:id", requireAuth, adminOnly, ctrl.Delete)
}
