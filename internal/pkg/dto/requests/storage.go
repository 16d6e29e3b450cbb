package requests

import "io"

// FileUpload carries one multipart upload through the service layer.
type FileUpload struct {
	FieldName   string
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}
