package utils

import (
	"net/http"

	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseFormFile reads one multipart file field into a FileUpload. The caller
// owns the returned reader and must not use it after the request body closes.
func ParseFormFile(r *http.Request, fieldName string) (*requests.FileUpload, error) {
	file, header, err := r.FormFile(fieldName)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	return &requests.FileUpload{
		FieldName:   fieldName,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Reader:      file,
	}, nil
}

// DecodeJSONBody decodes the request body into dst and wraps parse failures
// in the client-facing JSON error.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
