package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxDim     = 640 // sisi terpanjang foto profil
	photoQuality    = 80
	photoMaxUploadB = 5 << 20 // 5MB
)

// SavePhotoAsWebP menerima upload foto (jpeg/png), resize bila perlu,
// re-encode ke webp, dan simpan ke folder upload lokal.
// Return path relatif yang disimpan di kolom *_photo_url.
func SavePhotoAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > photoMaxUploadB {
		return "", fmt.Errorf("ukuran file melebihi batas 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	// Downscale sisi terpanjang ke photoMaxDim (aspect ratio dijaga)
	b := img.Bounds()
	if b.Dx() > photoMaxDim || b.Dy() > photoMaxDim {
		if b.Dx() >= b.Dy() {
			img = imaging.Resize(img, photoMaxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, photoMaxDim, imaging.Lanczos)
		}
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	baseDir := os.Getenv("UPLOAD_DIR")
	if baseDir == "" {
		baseDir = "uploads"
	}
	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s.webp", time.Now().Unix(), uuid.NewString())
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(folder, name)), nil
}
