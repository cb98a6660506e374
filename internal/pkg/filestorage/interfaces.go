package filestorage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

// PDFMimeType is the only content type accepted for uploads
const PDFMimeType = "application/pdf"

// URLPrefix is the public path under which locally owned files are served
const URLPrefix = "/uploads/"

const (
	// fieldTag prefixes generated names, after the upload form field
	fieldTag = "pdfFile"
	// randomSpace bounds the random component of generated names
	randomSpace = int64(1e18)
	defaultExt  = ".pdf"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Store validates and persists content, returning its public URL
	Store(ctx context.Context, content io.Reader, declaredMimeType, originalName string) (string, error)

	// StoreUpload stores a multipart upload using its declared Content-Type
	StoreUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)

	// Remove deletes a file owned by this storage. Foreign URLs and missing files are ignored.
	Remove(ctx context.Context, fileURL string) error

	// IsLocal reports whether fileURL points into this storage
	IsLocal(fileURL string) bool
}

// checkMimeType rejects anything that is not declared as a PDF
func checkMimeType(declaredMimeType string) error {
	if declaredMimeType != PDFMimeType {
		return &apperrors.CustomError{
			Err:     apperrors.ErrUnsupportedMediaType,
			Message: "Only PDF files are allowed",
		}
	}
	return nil
}

// generateName builds <fieldTag>-<unix nanos>-<random>.<ext>. The timestamp and
// the random component together are the only collision guard; no locking.
func generateName(now time.Time, originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = defaultExt
	}
	return fmt.Sprintf("%s-%d-%d%s", fieldTag, now.UnixNano(), rand.Int64N(randomSpace), ext)
}

// openUpload checks the declared type before opening so a rejected upload is never read
func openUpload(fileHeader *multipart.FileHeader) (multipart.File, string, error) {
	declared := fileHeader.Header.Get("Content-Type")
	if err := checkMimeType(declared); err != nil {
		return nil, declared, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, declared, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	return file, declared, nil
}
