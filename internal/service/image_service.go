package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adryeh/Portfolio-Creator/internal/config"
	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/models"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultUploadDir is where profile picture derivatives land when the
	// config leaves UPLOAD_DIR empty.
	DefaultUploadDir       = "static/profile_pics"
	DefaultMaxUploadSizeMB = 5
	ThumbnailMaxSize       = 125
	profilePictureJPEGQual = 82
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// IngestInput is an uploaded profile picture.
type IngestInput struct {
	Filename string
	Content  []byte
}

// ImageService turns uploaded images into stored thumbnail derivatives.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

// NewImageService returns a new ImageService configured from cfg.
func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := DefaultUploadDir
	maxUploadSizeMB := DefaultMaxUploadSizeMB

	if cfg != nil {
		if cfg.UploadDir != "" {
			uploadDir = cfg.UploadDir
		}
		if cfg.MaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.MaxUploadSizeMB
		}
	}

	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadDir returns the directory derivatives are stored in.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// Ingest validates the upload, produces a bounded thumbnail preserving aspect
// ratio, stores it under a generated filename and returns that filename. The
// caller-supplied name is never used for storage and the full-resolution
// original is discarded.
func (s *ImageService) Ingest(ctx context.Context, in IngestInput) (string, error) {
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(in.Filename)))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", models.NewValidationError("Only jpg and png images are allowed")
	}

	detectedType := http.DetectContentType(in.Content)
	if detectedType != "image/jpeg" && detectedType != "image/png" {
		return "", models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	thumbnail := resizeToFit(decoded, ThumbnailMaxSize, ThumbnailMaxSize)

	// uuid-derived name: never trust the uploaded filename, which may carry
	// path separators or collide with existing files.
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	var encoded bytes.Buffer
	if ext == ".png" {
		err = png.Encode(&encoded, thumbnail)
	} else {
		err = jpeg.Encode(&encoded, thumbnail, &jpeg.Options{Quality: profilePictureJPEGQual})
	}
	if err != nil {
		return "", models.NewInternalError(err)
	}

	if err := writeBytesToFile(filepath.Join(s.uploadDir, name), encoded.Bytes()); err != nil {
		return "", models.NewInternalError(err)
	}

	bounds := thumbnail.Bounds()
	middleware.Logger.InfoContext(ctx, "profile picture stored",
		"filename", name,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
	)
	return name, nil
}

// resizeToFit scales src down to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
