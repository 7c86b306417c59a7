// file: internals/helpers/storage/covers.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sarathi_backend/internals/constants"
)

const thumbSide = 320

// UploadContentCover re-encodes an uploaded image to webp, derives a square
// thumbnail, and uploads both under content/<area>/<id>/.
// Returns (coverURL, thumbURL).
func UploadContentCover(ctx context.Context, svc *OSSService, area string, id uuid.UUID, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File missing")
	}
	if id == uuid.Nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Invalid content id")
	}
	if fh.Size > maxUploadSize {
		return "", "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image too large (max 5MB)")
	}
	if !constants.IsImageExt(fh.Filename) {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}

	img, err := decodeImage(all, fh.Filename)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
	}

	opts := defaultWebPOptionsFromEnv()

	cover, err := encodeToWebP(downscaleIfNeeded(img, opts.MaxW, opts.MaxH), opts)
	if err != nil {
		return "", "", err
	}

	// center-cropped square thumbnail
	thumbImg := imaging.Fill(img, thumbSide, thumbSide, imaging.Center, imaging.Lanczos)
	thumbOpts := opts
	thumbOpts.TargetKB = 0
	thumbOpts.Quality = 75
	thumb, err := encodeToWebP(thumbImg, thumbOpts)
	if err != nil {
		return "", "", err
	}

	area = strings.Trim(strings.ToLower(strings.TrimSpace(area)), "/")
	if area == "" {
		area = "misc"
	}
	ts := time.Now().Format("20060102_150405")
	coverKey := fmt.Sprintf("content/%s/%s/cover_%s_%s.webp", area, id.String(), ts, randHex(3))
	thumbKey := fmt.Sprintf("content/%s/%s/thumb_%s_%s.webp", area, id.String(), ts, randHex(3))

	if err := svc.UploadStream(ctx, coverKey, bytes.NewReader(cover), "image/webp", true, true); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to OSS failed")
	}
	if err := svc.UploadStream(ctx, thumbKey, bytes.NewReader(thumb), "image/webp", true, true); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to OSS failed")
	}

	return svc.PublicURL(coverKey), svc.PublicURL(thumbKey), nil
}

// PickUploadedFile finds the first file field among common field names.
// Frontends are inconsistent about the multipart key.
func PickUploadedFile(form *multipart.Form, candidates ...string) *multipart.FileHeader {
	if form == nil || form.File == nil {
		return nil
	}
	if len(candidates) == 0 {
		candidates = []string{"file", "image", "cover", "upload"}
	}
	for _, key := range candidates {
		if fhs := form.File[key]; len(fhs) > 0 && fhs[0] != nil {
			return fhs[0]
		}
	}
	// fall back to any field
	for _, fhs := range form.File {
		if len(fhs) > 0 && fhs[0] != nil {
			return fhs[0]
		}
	}
	return nil
}
