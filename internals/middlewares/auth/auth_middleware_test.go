package auth_test

import (
	"net/http/httptest"
	"testing"

	"inovasi_backend/internals/constants"
	authService "inovasi_backend/internals/features/users/auth/service"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/middlewares/auth"
	"inovasi_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	db := testutil.NewDB(t)
	tokens := testutil.NewTokens(t)

	admin := testutil.CreateUser(t, db, "admin", "Admin@123", constants.RoleAdmin, constants.StatusAktif)
	opd := testutil.CreateUser(t, db, "opd1", "Opd1@123", constants.RoleOPD, constants.StatusAktif)
	inactive := testutil.CreateUser(t, db, "opd2", "Opd2@456", constants.RoleOPD, constants.StatusTidakAktif)

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/me",
		auth.AuthMiddleware(db, tokens),
		auth.With(func(c *fiber.Ctx, ac auth.Context) error {
			return c.SendString(ac.Username + ":" + ac.Role)
		}),
	)
	app.Get("/admin",
		auth.AuthMiddleware(db, tokens),
		auth.OnlyRoles("khusus admin", constants.AdminOnly...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	issue := func(id uuid.UUID, username, role string) string {
		tok, _, err := tokens.Issue(authService.TokenClaims{UserID: id, Username: username, Role: role})
		require.NoError(t, err)
		return tok
	}
	call := func(path, header string) int {
		req := httptest.NewRequest("GET", path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		res, err := app.Test(req)
		require.NoError(t, err)
		return res.StatusCode
	}

	assert.Equal(t, 401, call("/me", ""), "tanpa token")
	assert.Equal(t, 401, call("/me", "Token abc"), "skema salah")
	assert.Equal(t, 401, call("/me", "Bearer rusak"), "token rusak")
	assert.Equal(t, 401, call("/me", "Bearer "+issue(uuid.New(), "hantu", constants.RoleAdmin)), "user tidak ada")
	assert.Equal(t, 403, call("/me", "Bearer "+issue(inactive.ID, inactive.Username, inactive.Role)), "user tidak aktif")
	assert.Equal(t, 200, call("/me", "bearer  "+issue(opd.ID, opd.Username, opd.Role)))

	// role di token diabaikan, role dari DB yang dipakai
	assert.Equal(t, 403, call("/admin", "Bearer "+issue(opd.ID, opd.Username, constants.RoleAdmin)))
	assert.Equal(t, 204, call("/admin", "Bearer "+issue(admin.ID, admin.Username, admin.Role)))
}

func TestWithoutContext(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/", auth.With(func(c *fiber.Ctx, ac auth.Context) error { return nil }))
	app.Get("/role", auth.OnlyRoles("", constants.RoleAdmin), func(c *fiber.Ctx) error { return nil })

	for _, path := range []string{"/", "/role"} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 401, res.StatusCode, path)
	}
}

func TestContextCanAccessOwned(t *testing.T) {
	owner := uuid.New()
	assert.True(t, auth.Context{UserID: owner, Role: constants.RoleOPD}.CanAccessOwned(owner))
	assert.False(t, auth.Context{UserID: uuid.New(), Role: constants.RoleOPD}.CanAccessOwned(owner))
	assert.True(t, auth.Context{UserID: uuid.New(), Role: constants.RoleAdmin}.CanAccessOwned(owner))
}
