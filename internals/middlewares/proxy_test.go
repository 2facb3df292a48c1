package middlewares

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginApp(proxies []string) *fiber.App {
	cfg := fiber.Config{DisableStartupMessage: true}
	ApplyTrustedProxies(&cfg, proxies)
	app := fiber.New(cfg)
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendString(c.IP())
	})
	return app
}

func loginCodes(t *testing.T, app *fiber.App, n int) []int {
	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		req := httptest.NewRequest("POST", "/login", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("10.0.0.%d", i+1))
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		res.Body.Close()
		codes = append(codes, res.StatusCode)
	}
	return codes
}

func TestForwardedForIgnoredWithoutTrustedProxies(t *testing.T) {
	codes := loginCodes(t, loginApp(nil), 6)
	assert.Equal(t, []int{200, 200, 200, 200, 200, 429}, codes)
}

func TestForwardedForHonoredFromTrustedProxy(t *testing.T) {
	// request dari App.Test datang dari 0.0.0.0
	codes := loginCodes(t, loginApp([]string{"0.0.0.0/0"}), 6)
	for _, code := range codes {
		assert.Equal(t, 200, code)
	}
}
