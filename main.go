package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"inovasi_backend/internals/configs"
	database "inovasi_backend/internals/databases"
	authService "inovasi_backend/internals/features/users/auth/service"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"
	middlewares "inovasi_backend/internals/middlewares"
	routes "inovasi_backend/internals/route"
	"inovasi_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}

	// `go run . migrate` / `go run . seed` lalu keluar
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			log.Println("✅ Migrasi selesai")
			return
		case "seed":
			if err := seeds.RunAllSeeds(db, configs.BcryptCost); err != nil {
				log.Fatalf("[ERROR] seed: %v", err)
			}
			log.Println("✅ Seeding selesai")
			return
		default:
			log.Fatalf("[ERROR] perintah tidak dikenal: %s (migrate|seed)", os.Args[1])
		}
	}

	database.TunePool(db)
	database.WarmUp(db)

	tokens, err := authService.NewTokenService(configs.JWTSecret, configs.JWTExpiresIn)
	if err != nil {
		log.Fatalf("[ERROR] token service: %v", err)
	}

	store, err := newUploadStore()
	if err != nil {
		log.Fatalf("[ERROR] upload store: %v", err)
	}
	upload.PublicBase = configs.GetEnv("UPLOAD_PUBLIC_BASE", "/uploads")

	cfg := fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             configs.GetEnvInt("BODY_LIMIT_MB", 200) * 1024 * 1024,
		DisableStartupMessage: true,
	}
	middlewares.ApplyTrustedProxies(&cfg, configs.TrustedProxies)
	app := fiber.New(cfg)

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timeout per request
	reqTimeout := configs.GetEnvDuration("REQUEST_TIMEOUT", 60*time.Second)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), reqTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app)

	if configs.UploadDriver == "local" {
		app.Static(upload.PublicBase, configs.UploadRoot, fiber.Static{ByteRange: true, MaxAge: 3600})
	}

	routes.SetupRoutes(app, routes.Deps{
		DB:       db,
		Tokens:   tokens,
		Uploader: upload.NewUploader(store),
		CarouselPolicy: upload.CarouselPolicy(
			configs.GetEnvInt("CAROUSEL_MAX_WIDTH", 1920),
			configs.GetEnvInt("CAROUSEL_MAX_HEIGHT", 1080),
		),
	})

	reaper, err := upload.StartOrphanReaper(store, database.ReferencedUploads(db), upload.ReaperConfigFromEnv())
	if err != nil {
		log.Printf("[WARN] reaper tidak jalan: %v", err)
	}

	app.Server().ReadTimeout = 60 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if reaper != nil {
		<-reaper.Stop().Done()
	}
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newUploadStore() (upload.Store, error) {
	switch configs.UploadDriver {
	case "oss":
		log.Println("☁️ Upload ke Aliyun OSS")
		s, err := upload.NewOSSStoreFromEnv()
		if err != nil {
			return nil, err
		}
		return s, nil
	case "local", "":
		log.Printf("📁 Upload ke disk lokal: %s", configs.UploadRoot)
		s, err := upload.NewLocalStore(configs.UploadRoot)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("UPLOAD_DRIVER tidak dikenal: %s", configs.UploadDriver)
	}
}
