package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"

	"github.com/google/uuid"
)

// MaxMediaSize is the upload size limit in bytes.
const MaxMediaSize = 5 * 1024 * 1024

var mediaExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// MediaService stores uploaded media files.
type MediaService interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type mediaService struct {
	uploadDir string
}

// NewMediaService creates a media service writing into uploadDir.
func NewMediaService(uploadDir string) MediaService {
	return &mediaService{uploadDir: uploadDir}
}

// Save validates size and content type by sniffing the file bytes, then
// writes the file under a random name and returns its path under the
// static uploads route. The transport layer turns that into an absolute
// URL. The client-declared content type is ignored.
func (s *mediaService) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxMediaSize {
		observability.MediaUploads.WithLabelValues("too_large").Inc()
		return "", models.NewValidationError("File exceeds the 5MB size limit")
	}

	src, err := file.Open()
	if err != nil {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		observability.MediaUploads.WithLabelValues("bad_type").Inc()
		return "", models.NewValidationError("Only image uploads are allowed")
	}

	ext, ok := mediaExtensions[contentType]
	if !ok {
		ext = filepath.Ext(file.Filename)
	}
	name := uuid.NewString() + ext

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		observability.MediaUploads.WithLabelValues("error").Inc()
		return "", models.NewInternalError(err)
	}

	observability.MediaUploads.WithLabelValues("ok").Inc()
	return fmt.Sprintf("/uploads/%s", name), nil
}
