package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	clock    func() time.Time
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
// The directory is created lazily on the first write.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		clock:    time.Now,
	}
}

// BasePath returns the storage root
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// ensureRoot creates the storage root if it does not exist yet
func (ls *LocalStorage) ensureRoot() error {
	if err := os.MkdirAll(ls.basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", ls.basePath).Msg("Failed to create storage directory")
		return fmt.Errorf("failed to create storage directory %s: %w", ls.basePath, err)
	}
	return nil
}

// Store validates the declared MIME type and writes content under the storage root.
func (ls *LocalStorage) Store(_ context.Context, content io.Reader, declaredMimeType, originalName string) (string, error) {
	if err := checkMimeType(declaredMimeType); err != nil {
		return "", err
	}

	if content == nil {
		return "", fmt.Errorf("no file content to store")
	}

	if err := ls.ensureRoot(); err != nil {
		return "", err
	}

	name := generateName(ls.clock(), originalName)
	dstPath := filepath.Join(ls.basePath, name)

	// O_EXCL turns an improbable name collision into an error instead of an overwrite
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, content)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := URLPrefix + name
	logger.Info().Str("filename", originalName).Str("saved_as", name).Int64("bytes", written).Msg("File saved successfully")
	return url, nil
}

// StoreUpload stores a multipart file using the Content-Type declared by the client
func (ls *LocalStorage) StoreUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, declared, err := openUpload(fileHeader)
	if err != nil {
		logger.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Upload not stored")
		return "", err
	}
	defer file.Close()

	return ls.Store(ctx, file, declared, fileHeader.Filename)
}

// IsLocal reports whether fileURL is under the uploads prefix
func (ls *LocalStorage) IsLocal(fileURL string) bool {
	return strings.HasPrefix(fileURL, URLPrefix)
}

// Remove deletes the file behind a locally owned URL. Foreign URLs are left
// untouched and a file that is already gone is not an error.
func (ls *LocalStorage) Remove(_ context.Context, fileURL string) error {
	if !ls.IsLocal(fileURL) {
		return nil
	}

	// Only the base name is honoured so the path cannot escape the root
	name := filepath.Base(strings.TrimPrefix(fileURL, URLPrefix))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		logger.Warn().Str("url", fileURL).Msg("Ignoring removal of invalid upload path")
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}
