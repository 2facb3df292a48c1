package auth

import (
	"inovasi_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsKey = "auth_ctx"

// Context adalah identitas terautentikasi untuk satu request.
type Context struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

func (a Context) IsAdmin() bool { return a.Role == constants.RoleAdmin }

// CanAccessOwned: admin boleh semua, selain itu hanya milik sendiri.
func (a Context) CanAccessOwned(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}

// FromCtx membaca Context yang dipasang AuthMiddleware.
func FromCtx(c *fiber.Ctx) (Context, bool) {
	ac, ok := c.Locals(localsKey).(Context)
	return ac, ok
}

func setCtx(c *fiber.Ctx, ac Context) {
	c.Locals(localsKey, ac)
}

// Handler adalah handler yang menerima identitas sebagai parameter.
type Handler func(c *fiber.Ctx, ac Context) error

// With mengubah Handler menjadi fiber.Handler. Tanpa Context → 401.
func With(h Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, ok := FromCtx(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token akses diperlukan")
		}
		return h(c, ac)
	}
}
