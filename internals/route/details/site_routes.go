package details

import (
	carouselRoute "inovasi_backend/internals/features/site/carousel/route"
	kontakRoute "inovasi_backend/internals/features/site/kontak/route"
	systemTitleRoute "inovasi_backend/internals/features/site/system_title/route"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/helpers/upload"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SiteRoutes: konten halaman depan (carousel, judul sistem, kontak).
func SiteRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService, up *upload.Uploader, carouselPolicy upload.Policy) {
	carouselRoute.CarouselRoutes(api, db, tokens, up, carouselPolicy)
	systemTitleRoute.SystemTitleRoutes(api, db, tokens)
	kontakRoute.KontakRoutes(api, db, tokens)
}
