package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xwebp "golang.org/x/image/webp"
)

const imageQuality = 85

// NormalizeImage memperkecil gambar agar muat di maxW×maxH (keep aspect).
// Gambar yang sudah muat dikembalikan apa adanya.
func NormalizeImage(data []byte, mime string, maxW, maxH int) ([]byte, error) {
	if maxW <= 0 && maxH <= 0 {
		return data, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil && mime == "image/webp" {
		cfg, err = xwebp.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if (maxW <= 0 || cfg.Width <= maxW) && (maxH <= 0 || cfg.Height <= maxH) {
		return data, nil
	}

	img, err := decodeImage(data, mime)
	if err != nil {
		return nil, err
	}
	if maxW <= 0 {
		maxW = cfg.Width
	}
	if maxH <= 0 {
		maxH = cfg.Height
	}
	resized := imaging.Fit(img, maxW, maxH, imaging.Lanczos)

	buf := new(bytes.Buffer)
	switch mime {
	case "image/webp":
		err = webp.Encode(buf, resized, &webp.Options{Quality: imageQuality})
	case "image/png":
		err = imaging.Encode(buf, resized, imaging.PNG)
	default:
		err = imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(imageQuality))
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", mime, err)
	}
	return buf.Bytes(), nil
}

func decodeImage(data []byte, mime string) (image.Image, error) {
	if mime == "image/webp" {
		return xwebp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}
