package utils

import (
	"bytes"
	"testing"

	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid request passes", func(t *testing.T) {
		err := ValidateStruct(&requests.SendOtp{Email: "doc@example.com"})
		assert.NoError(t, err)
	})

	t.Run("Malformed email rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.SendOtp{Email: "not-an-email"})
		assert.Error(t, err)
	})

	t.Run("Short password rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Email: "doc@example.com", Password: ""})
		assert.Error(t, err)
	})

	t.Run("Gender outside allowed set rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateCase{
			Firstname:         "Asha",
			Lastname:          "Rao",
			Age:               34,
			Gender:            "unknown",
			Duration:          "2 weeks",
			SiteOfInfection:   "left forearm",
			PreviousTreatment: "none",
		})
		assert.Error(t, err)
	})
}

func validUpload() *requests.FileUpload {
	return &requests.FileUpload{
		FieldName:   "nakedEyePhoto",
		Filename:    "lesion.jpg",
		Size:        1024,
		ContentType: constvars.MIMEImageJPEG,
		Reader:      bytes.NewReader([]byte("fake-jpeg-bytes")),
	}
}

func TestValidateUpload(t *testing.T) {
	t.Run("Valid JPEG passes", func(t *testing.T) {
		assert.NoError(t, ValidateUpload(validUpload(), 5))
	})

	t.Run("Missing file rejected", func(t *testing.T) {
		assert.Error(t, ValidateUpload(nil, 5))
	})

	t.Run("Empty file rejected", func(t *testing.T) {
		file := validUpload()
		file.Size = 0
		assert.Error(t, ValidateUpload(file, 5))
	})

	t.Run("Oversized file rejected", func(t *testing.T) {
		file := validUpload()
		file.Size = 6 * 1024 * 1024
		assert.Error(t, ValidateUpload(file, 5))
	})

	t.Run("Disallowed MIME type rejected", func(t *testing.T) {
		file := validUpload()
		file.ContentType = "application/pdf"
		assert.Error(t, ValidateUpload(file, 5))
	})

	t.Run("Disallowed extension rejected", func(t *testing.T) {
		file := validUpload()
		file.Filename = "lesion.gif"
		assert.Error(t, ValidateUpload(file, 5))
	})
}
