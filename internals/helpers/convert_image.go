package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	profilePhotoMaxDim  = 512
	profilePhotoQuality = 80
)

// ConvertProfilePhotoToWebP decodes an uploaded JPEG/PNG, downsizes it so the
// longest side is at most 512px (keeping aspect), and re-encodes as lossy WebP.
func ConvertProfilePhotoToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > profilePhotoMaxDim || b.Dy() > profilePhotoMaxDim {
		img = imaging.Fit(img, profilePhotoMaxDim, profilePhotoMaxDim, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: profilePhotoQuality}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), nil
}
