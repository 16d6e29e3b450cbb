package utils

import (
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

var allowedUploadTypes = map[string]bool{
	constvars.MIMEImageJPEG: true,
	constvars.MIMEImagePNG:  true,
}

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateUpload is the single upload contract applied to every upload
// entry point: field presence, MIME allow-list, max-size bound.
func ValidateUpload(file *requests.FileUpload, maxSizeInMB int64) error {
	if file == nil || file.Reader == nil {
		return fmt.Errorf("no file uploaded")
	}
	if file.Size <= 0 {
		return fmt.Errorf("uploaded file %s is empty", file.FieldName)
	}
	if file.Size > maxSizeInMB*1024*1024 {
		return fmt.Errorf("uploaded file %s exceeds the %dMB limit", file.FieldName, maxSizeInMB)
	}
	if !allowedUploadTypes[file.ContentType] {
		return fmt.Errorf("invalid file type %s, only JPEG or PNG allowed", file.ContentType)
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); !allowedUploadExtensions[ext] {
		return fmt.Errorf("invalid file extension %s, only JPEG or PNG allowed", ext)
	}
	return nil
}
