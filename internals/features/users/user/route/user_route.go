package route

import (
	"inovasi_backend/internals/configs"
	"inovasi_backend/internals/constants"
	authService "inovasi_backend/internals/features/users/auth/service"
	userController "inovasi_backend/internals/features/users/user/controller"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes: /api/users, khusus ADMIN.
func UserRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	ctrl := userController.NewUserController(db, configs.BcryptCost)

	g := api.Group("/users",
		authMiddleware.AuthMiddleware(db, tokens),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pengguna"), constants.AdminOnly...),
	)

	g.Get("/stats", authMiddleware.With(ctrl.GetStats))
	g.Get("/", authMiddleware.With(ctrl.GetUsers))
	g.Get("/:id", authMiddleware.With(ctrl.GetUser))
	g.Post("/", authMiddleware.With(ctrl.CreateUser))
	g.Put("/:id", authMiddleware.With(ctrl.UpdateUser))
	g.Patch("/:id/password", authMiddleware.With(ctrl.ChangePassword))
	g.Patch("/:id/reset-password", authMiddleware.With(ctrl.ResetPassword))
	g.Patch("/:id/toggle-status", authMiddleware.With(ctrl.ToggleStatus))
	g.Delete("/:id", authMiddleware.With(ctrl.DeleteUser))
}
