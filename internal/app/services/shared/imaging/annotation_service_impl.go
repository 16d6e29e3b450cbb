package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"strings"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type annotationService struct{}

func NewAnnotationService() contracts.AnnotationService {
	return &annotationService{}
}

// AnnotateImage stamps the label onto the bottom-left corner of the uploaded
// photo. The result is always re-encoded as PNG.
func (s *annotationService) AnnotateImage(ctx context.Context, file *requests.FileUpload, label string) (*requests.FileUpload, error) {
	src, _, err := image.Decode(file.Reader)
	if err != nil {
		return nil, exceptions.ErrImageAnnotation(err)
	}

	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	if label != "" {
		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 0, A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(bounds.Min.X+10, bounds.Max.Y-10),
		}
		drawer.DrawString(label)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, exceptions.ErrImageAnnotation(err)
	}

	return &requests.FileUpload{
		FieldName:   file.FieldName,
		Filename:    annotatedFilename(file.Filename),
		Size:        int64(buf.Len()),
		ContentType: constvars.MIMEImagePNG,
		Reader:      bytes.NewReader(buf.Bytes()),
	}, nil
}

func annotatedFilename(original string) string {
	base := original
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + "_annotated.png"
}
