package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptCost   int
	CorsOrigins  []string

	// kosong = X-Forwarded-For diabaikan, IP diambil dari koneksi
	TrustedProxies []string

	UploadDriver string
	UploadRoot   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AppEnv = strings.ToLower(GetEnv("APP_ENV", "development"))
	JWTSecret = strings.TrimSpace(GetEnv("JWT_SECRET"))
	JWTExpiresIn = GetEnvDuration("JWT_EXPIRES_IN", 24*time.Hour)
	BcryptCost = GetEnvInt("BCRYPT_COST", 10)
	CorsOrigins = splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173"))
	TrustedProxies = splitList(GetEnv("TRUSTED_PROXIES"))
	UploadDriver = strings.ToLower(GetEnv("UPLOAD_DRIVER", "local"))
	UploadRoot = GetEnv("UPLOAD_ROOT", "uploads")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	log.Printf("✅ APP_ENV=%s upload=%s (%s)", AppEnv, UploadDriver, UploadRoot)
}

func IsProduction() bool {
	return AppEnv == "production"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s=%q bukan angka, pakai default %d", key, v, def)
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[WARN] %s=%q bukan durasi valid, pakai default %s", key, v, def)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
