package route

import (
	"inovasi_backend/internals/configs"
	"inovasi_backend/internals/features/users/auth/controller"
	authService "inovasi_backend/internals/features/users/auth/service"
	rateLimiter "inovasi_backend/internals/middlewares"
	authMiddleware "inovasi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: /api/auth
func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	authController := controller.NewAuthController(db, tokens, configs.BcryptCost)

	g := api.Group("/auth")

	// 🔓 Public
	g.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	g.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔐 Protected
	requireAuth := authMiddleware.AuthMiddleware(db, tokens)
	g.Get("/profile", requireAuth, authMiddleware.With(authController.GetProfile))
	g.Put("/profile", requireAuth, authMiddleware.With(authController.UpdateProfile))
}
