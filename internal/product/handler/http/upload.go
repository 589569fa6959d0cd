package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/slug"
)

// maxUploadSize bounds product image uploads at 5 MB.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler stores product images on local disk and serves them back
// under /uploads.
type UploadHandler struct {
	dir    string
	logger *slog.Logger
}

// NewUploadHandler creates an upload handler rooted at dir, creating the
// directory if needed.
func NewUploadHandler(dir string, logger *slog.Logger) (*UploadHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadHandler{dir: dir, logger: logger}, nil
}

// Upload handles POST /api/v1/upload with a multipart `image` field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("Invalid multipart form."), h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("Image file is required."), h.logger)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		httputil.WriteError(w, r, apperrors.InvalidInput("Images only! Allowed types: jpg, jpeg, png, webp."), h.logger)
		return
	}

	base := strings.TrimSuffix(filepath.Base(header.Filename), ext)
	name := fmt.Sprintf("image-%s-%d%s", slug.Generate(base), time.Now().UnixNano(), ext)

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Image uploaded successfully",
		"image":   "/uploads/" + name,
	})
}

// Static returns a handler serving stored images under the given URL prefix.
func (h *UploadHandler) Static(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.Dir(h.dir)))
}
