package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles: 401 kalau belum terautentikasi, 403 kalau role tidak diizinkan.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	if customMessage == "" {
		customMessage = "Anda tidak memiliki akses ke resource ini"
	}
	return func(c *fiber.Ctx) error {
		ac, ok := FromCtx(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token akses diperlukan")
		}
		for _, allowed := range roles {
			if ac.Role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, customMessage)
	}
}
