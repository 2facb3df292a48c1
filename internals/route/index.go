package routes

import (
	"log"
	"time"

	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/helpers/upload"
	routeDetails "inovasi_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// Deps adalah dependensi yang dibagikan ke semua route.
type Deps struct {
	DB             *gorm.DB
	Tokens         *authService.TokenService
	Uploader       *upload.Uploader
	CarouselPolicy upload.Policy
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d.DB)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth & User routes...")
	routeDetails.AuthRoutes(api, d.DB, d.Tokens)
	routeDetails.UserRoutes(api, d.DB, d.Tokens)

	log.Println("[INFO] Mounting Inovasi routes...")
	routeDetails.InovasiRoutes(api, d.DB, d.Tokens, d.Uploader)

	log.Println("[INFO] Mounting Site routes...")
	routeDetails.SiteRoutes(api, d.DB, d.Tokens, d.Uploader, d.CarouselPolicy)
}
