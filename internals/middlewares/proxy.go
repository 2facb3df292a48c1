package middlewares

import "github.com/gofiber/fiber/v2"

// ApplyTrustedProxies: X-Forwarded-For hanya dipakai kalau request datang dari
// salah satu proxy (IP/CIDR) di daftar. Rate limiter memakai c.IP().
func ApplyTrustedProxies(cfg *fiber.Config, proxies []string) {
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = proxies
	if len(proxies) > 0 {
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
	}
}
