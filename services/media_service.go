package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"marketplace-api/config"
)

// MediaStorage persists an uploaded image and returns a stable URL or path.
type MediaStorage interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImageFile reports whether the filename carries an accepted image extension.
func AllowedImageFile(filename string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// CloudinaryStorage uploads images to the external media host.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStorage(client *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{client: client}
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	result, err := s.client.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

// LocalStorage writes images under the upload path with generated names.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

func (s *LocalStorage) UploadImage(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	dir := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	storedPath := filepath.Join(dir, name)

	dst, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(storedPath), nil
}

// ItemImageStorage returns Cloudinary when configured, local disk otherwise.
func ItemImageStorage() MediaStorage {
	if config.Media != nil {
		return NewCloudinaryStorage(config.Media)
	}
	return NewLocalStorage(config.UploadPath())
}

// ScreenshotStorage stores payment screenshots on local disk; they are
// reviewed by the admin and never served on listing pages.
func ScreenshotStorage() MediaStorage {
	return NewLocalStorage(config.UploadPath())
}
