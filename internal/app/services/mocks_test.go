package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentdesk/internal/app/models"
)

/* ==================== MOCKS ==================== */

/* -------- ResourceStore -------- */

type MockResourceStore struct {
	mock.Mock
}

func (m *MockResourceStore) Create(ctx context.Context, resource *models.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceStore) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceStore) Count(ctx context.Context, pred models.ResourcePredicate) (int64, error) {
	args := m.Called(ctx, pred)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResourceStore) Find(ctx context.Context, pred models.ResourcePredicate, sort models.SortSpec, offset, limit uint64) ([]models.Resource, error) {
	args := m.Called(ctx, pred, sort, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockResourceStore) IncrementDownloads(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockResourceStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

/* -------- FileStorage -------- */

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Store(ctx context.Context, content io.Reader, declaredMimeType, originalName string) (string, error) {
	args := m.Called(ctx, content, declaredMimeType, originalName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) StoreUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, fileHeader)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Remove(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

func (m *MockFileStorage) IsLocal(fileURL string) bool {
	args := m.Called(fileURL)
	return args.Bool(0)
}

/* ==================== HELPERS ==================== */

// newFileHeader builds a multipart file header the way gin hands one to a controller
func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="pdfFile"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["pdfFile"], 1)
	return form.File["pdfFile"][0]
}
