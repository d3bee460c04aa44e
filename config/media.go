package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Media is the Cloudinary client for item and profile images. It stays nil
// when CLOUDINARY_* is not configured; callers fall back to local storage.
var Media *cloudinary.Cloudinary

func InitMedia() {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Cloudinary not configured, storing images on local disk")
		return
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
		return
	}

	Media = cld
	log.Println("Cloudinary media storage configured")
}

// UploadPath returns the directory for locally stored uploads.
func UploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}
