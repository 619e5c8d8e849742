package services

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Neither image dimension may exceed this after processing.
const maxImageDimension = 1024

const jpegQuality = 85

// ErrUnsupportedImageType is returned for anything but jpg/jpeg/png uploads.
var ErrUnsupportedImageType = errors.New("only JPG/JPEG/PNG images are allowed")

var uploadDir string

// InitStorage creates the directory listing images are written to. The
// location defaults to images/uploads and can be overridden with UPLOAD_DIR.
func InitStorage() error {
	uploadDir = os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "images/uploads"
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %v", err)
	}
	return nil
}

// UploadDir returns the directory processed images are stored in.
func UploadDir() string {
	return uploadDir
}

// SaveListingImage validates, downsizes and stores an uploaded image,
// returning its path relative to the uploads directory. Callers treat any
// error as "no image" rather than a failed listing.
func SaveListingImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", ErrUnsupportedImageType
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	// Scale down proportionally so neither dimension exceeds the bound.
	// Smaller images pass through untouched.
	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	// Flatten any alpha channel onto white so the stored file is plain RGB.
	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	fileName := fmt.Sprintf("product_%d%s", time.Now().UnixNano(), ext)
	if err := imaging.Save(flat, filepath.Join(uploadDir, fileName), imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}

	return fileName, nil
}

// ImageURL returns the public URL for a stored image path, or "" for
// listings without an image.
func ImageURL(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	return "/uploads/" + filepath.ToSlash(imagePath)
}
