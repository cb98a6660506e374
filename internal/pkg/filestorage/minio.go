package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// MinioConfig describes an S3 compatible bucket
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	// PublicURL is the address clients download objects from, bucket included
	PublicURL string
}

// MinioStorage keeps uploads in an S3 compatible bucket
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	clock     func() time.Time
}

// NewMinioStorage builds the client. No request is sent until EnsureBucket or
// the first upload.
func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		clock:     time.Now,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet
func (ms *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := ms.client.BucketExists(ctx, ms.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", ms.bucket, err)
	}
	if exists {
		return nil
	}

	if err := ms.client.MakeBucket(ctx, ms.bucket, minio.MakeBucketOptions{Region: ms.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", ms.bucket, err)
	}
	logger.Info().Str("bucket", ms.bucket).Msg("Storage bucket created")
	return nil
}

// objectURL maps an object name to its public URL
func (ms *MinioStorage) objectURL(name string) string {
	return ms.publicURL + "/" + name
}

// objectName extracts the object name from a URL owned by this storage
func (ms *MinioStorage) objectName(fileURL string) string {
	return path.Base(strings.TrimPrefix(fileURL, ms.publicURL+"/"))
}

// Store validates the declared MIME type and streams content into the bucket
func (ms *MinioStorage) Store(ctx context.Context, content io.Reader, declaredMimeType, originalName string) (string, error) {
	if err := checkMimeType(declaredMimeType); err != nil {
		return "", err
	}
	if content == nil {
		return "", fmt.Errorf("no file content to store")
	}

	name := generateName(ms.clock(), originalName)

	// Size -1 streams until EOF
	info, err := ms.client.PutObject(ctx, ms.bucket, name, content, -1, minio.PutObjectOptions{
		ContentType: declaredMimeType,
	})
	if err != nil {
		logger.Error().Err(err).Str("bucket", ms.bucket).Str("object", name).Msg("Failed to upload object")
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.Info().Str("filename", originalName).Str("saved_as", name).Int64("bytes", info.Size).Msg("File uploaded to bucket")
	return ms.objectURL(name), nil
}

// StoreUpload stores a multipart file using the Content-Type declared by the client
func (ms *MinioStorage) StoreUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, declared, err := openUpload(fileHeader)
	if err != nil {
		logger.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Upload not stored")
		return "", err
	}
	defer file.Close()

	return ms.Store(ctx, file, declared, fileHeader.Filename)
}

// IsLocal reports whether fileURL points into the bucket
func (ms *MinioStorage) IsLocal(fileURL string) bool {
	return ms.publicURL != "" && strings.HasPrefix(fileURL, ms.publicURL+"/")
}

// Remove deletes the object behind fileURL. Removing a missing object succeeds.
func (ms *MinioStorage) Remove(ctx context.Context, fileURL string) error {
	if !ms.IsLocal(fileURL) {
		return nil
	}

	name := ms.objectName(fileURL)
	if name == "" || name == "." || name == "/" {
		logger.Warn().Str("url", fileURL).Msg("Ignoring removal of invalid object path")
		return nil
	}

	if err := ms.client.RemoveObject(ctx, ms.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		logger.Error().Err(err).Str("bucket", ms.bucket).Str("object", name).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("bucket", ms.bucket).Str("object", name).Msg("Object deleted successfully")
	return nil
}
