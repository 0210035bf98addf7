// Package upload stores cover images and ebook files on local disk and
// returns the public URL the catalog records.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/thirawat/librarium/internal/platform/apperr"
	"github.com/thirawat/librarium/internal/platform/validate"
)

// Kind selects the upload category, which fixes the target subdirectory
// and the allowed file extensions.
type Kind string

const (
	KindCover Kind = "covers"
	KindEbook Kind = "ebooks"
)

var allowedExtensions = map[Kind]map[string]bool{
	KindCover: {".png": true, ".jpg": true, ".jpeg": true, ".webp": true},
	KindEbook: {".pdf": true, ".epub": true},
}

// MaxUploadSize caps request bodies at 64 MiB, enough for any ebook we serve.
const MaxUploadSize = 64 << 20

// Result carries the public URL of a stored file.
type Result struct {
	URL string `json:"url"`
}

type Service struct {
	dir     string
	baseURL string
	logger  *slog.Logger
}

// NewService stores files under dir/<kind>/ and builds URLs from baseURL.
func NewService(dir, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Save writes an uploaded file to disk under a collision-free name and
// returns its public URL.
//
// The original filename is kept as a suffix so admins can still recognize
// files when browsing the storage directory.
func (service *Service) Save(kind Kind, header *multipart.FileHeader, file multipart.File) (*Result, error) {
	extension := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[kind][extension] {
		return nil, validate.RequiredError("file", fmt.Sprintf("File type %q is not allowed", extension))
	}

	targetDir := filepath.Join(service.dir, string(kind))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, apperr.Internal(err)
	}

	name := uuid.Must(uuid.NewV7()).String() + "_" + sanitize(header.Filename)
	targetPath := filepath.Join(targetDir, name)

	destination, err := os.Create(targetPath)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer destination.Close()

	written, err := io.Copy(destination, file)
	if err != nil {
		os.Remove(targetPath)
		return nil, apperr.Internal(err)
	}

	service.logger.Info("file_uploaded",
		slog.String("kind", string(kind)),
		slog.String("name", name),
		slog.Int64("bytes", written),
	)

	return &Result{URL: fmt.Sprintf("%s/static/%s/%s", service.baseURL, kind, name)}, nil
}

// sanitize strips path separators and spaces from a client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
