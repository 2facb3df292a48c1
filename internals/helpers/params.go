package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca path param bertipe UUID; salah format → 400.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError(name, "ID tidak valid")
	}
	return id, nil
}

// ParseBody mem-parse body request; gagal → 400.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format request tidak valid")
	}
	return nil
}

// QueryBool: "true"/"false" → *bool, selain itu nil.
func QueryBool(c *fiber.Ctx, key string) *bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return nil
	}
	return &v
}
