package filestorage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

func newTestMinio(t *testing.T) *MinioStorage {
	t.Helper()
	ms, err := NewMinioStorage(MinioConfig{
		Endpoint:  "127.0.0.1:9",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "studentdesk",
		PublicURL: "http://cdn.example.com/studentdesk/",
	})
	require.NoError(t, err)
	return ms
}

func TestMinioStorage_Ownership(t *testing.T) {
	ms := newTestMinio(t)

	assert.True(t, ms.IsLocal("http://cdn.example.com/studentdesk/pdfFile-1-2.pdf"))
	assert.False(t, ms.IsLocal("http://cdn.example.com/other/pdfFile-1-2.pdf"))
	assert.False(t, ms.IsLocal("/uploads/pdfFile-1-2.pdf"))
	assert.Equal(t, "pdfFile-1-2.pdf", ms.objectName("http://cdn.example.com/studentdesk/nested/../pdfFile-1-2.pdf"))
	assert.Equal(t, "http://cdn.example.com/studentdesk/a.pdf", ms.objectURL("a.pdf"))
}

func TestMinioStorage_RejectsNonPDFWithoutNetwork(t *testing.T) {
	ms := newTestMinio(t)

	_, err := ms.Store(context.Background(), bytes.NewReader([]byte("hello")), "text/plain", "notes.txt")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedMediaType)
}

func TestMinioStorage_RemoveIgnoresForeignURLs(t *testing.T) {
	ms := newTestMinio(t)
	assert.NoError(t, ms.Remove(context.Background(), "https://example.com/a.pdf"))
	assert.NoError(t, ms.Remove(context.Background(), "/uploads/a.pdf"))
}

func TestNewMinioStorage_InvalidEndpoint(t *testing.T) {
	_, err := NewMinioStorage(MinioConfig{Endpoint: "http://bad endpoint", Bucket: "b"})
	assert.Error(t, err)
}
