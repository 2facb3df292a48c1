package upload

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

const MB = int64(1024 * 1024)

// Policy adalah aturan satu jenis upload.
type Policy struct {
	Name       string
	Allowed    map[string]string // mime → ekstensi file tersimpan
	AllowedTxt string            // untuk pesan error
	MaxSize    int64             // per file
	MaxFiles   int               // per request (per Session)
	NamePrefix string            // opsional, mis. "carousel_"
	Normalize  func(data []byte, mime string) ([]byte, error)
}

var IndikatorPolicy = Policy{
	Name: "indikator",
	Allowed: map[string]string{
		"image/jpeg":      ".jpg",
		"image/png":       ".png",
		"application/pdf": ".pdf",
	},
	AllowedTxt: "PDF, JPG, PNG",
	MaxSize:    10 * MB,
	MaxFiles:   20,
}

// CarouselPolicy: gambar saja, 5MB, satu file, di-downscale ke maxW×maxH.
func CarouselPolicy(maxW, maxH int) Policy {
	return Policy{
		Name: "carousel",
		Allowed: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
			"image/webp": ".webp",
		},
		AllowedTxt: "JPG, JPEG, PNG, WEBP",
		MaxSize:    5 * MB,
		MaxFiles:   1,
		NamePrefix: "carousel_",
		Normalize: func(data []byte, mime string) ([]byte, error) {
			return NormalizeImage(data, mime, maxW, maxH)
		},
	}
}

// Detect mengembalikan mime (hasil sniff konten) dan ekstensi jika diizinkan.
func (p Policy) Detect(head []byte) (string, string, error) {
	m := mimetype.Detect(head)
	for allowed, ext := range p.Allowed {
		if m.Is(allowed) {
			return allowed, ext, nil
		}
	}
	return "", "", fmt.Errorf("Tipe file %s tidak diizinkan. Tipe yang diizinkan: %s", m.String(), p.AllowedTxt)
}

func (p Policy) sizeMessage() string {
	return fmt.Sprintf("Ukuran file maksimal %dMB", p.MaxSize/MB)
}
