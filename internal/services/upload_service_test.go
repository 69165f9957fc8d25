package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/imageprocessor"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/internal/storage"
	"atlasweb_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records calls so tests can assert nothing was stored when
// batch validation rejects the request.
type fakeStorage struct {
	saves    int
	presigns int
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	f.saves++
	return nil
}
func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}
func (f *fakeStorage) Delete(ctx context.Context, path string) error         { return nil }
func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }
func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}
func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "", storage.ErrPresignUnsupported
}
func (f *fakeStorage) PresignUpload(ctx context.Context, path, contentType string, expiry time.Duration) (*storage.PresignedUpload, error) {
	f.presigns++
	return nil, storage.ErrPresignUnsupported
}
func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) { return 0, nil }

func testUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSize:      1024,
		MaxFiles:     3,
		AllowedTypes: []string{"image/jpeg", "text/plain"},
		SignTTL:      5 * time.Minute,
		Provider:     "local",
	}
}

func newTestUploadService(store storage.Storage) UploadService {
	return NewUploadService(repositories.NewMediaRepository(), store, imageprocessor.NewProcessor(85), testUploadConfig())
}

// makeFileHeaders builds real multipart file headers the way gin hands
// them to the handler.
func makeFileHeaders(t *testing.T, files map[string]struct {
	contentType string
	content     string
}) []*multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["files"]
}

func TestUploadBatchRejectsTooManyFiles(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestUploadService(store)

	headers := makeFileHeaders(t, map[string]struct {
		contentType string
		content     string
	}{
		"a.txt": {"text/plain", "a"},
		"b.txt": {"text/plain", "b"},
		"c.txt": {"text/plain", "c"},
		"d.txt": {"text/plain", "d"},
	})

	_, err := svc.UploadBatch(context.Background(), nil, headers, "docs")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTooManyFiles, appErr.Code)
	assert.Zero(t, store.saves, "nothing is stored when the batch is rejected")
}

func TestUploadBatchRejectsDisallowedType(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestUploadService(store)

	headers := makeFileHeaders(t, map[string]struct {
		contentType string
		content     string
	}{
		"fine.txt":    {"text/plain", "ok"},
		"malware.exe": {"application/octet-stream", "MZ"},
	})

	_, err := svc.UploadBatch(context.Background(), nil, headers, "docs")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidFileType, appErr.Code)
	assert.Zero(t, store.saves, "the valid file of a rejected batch is not stored either")
}

func TestUploadBatchRejectsOversizeFile(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestUploadService(store)

	headers := makeFileHeaders(t, map[string]struct {
		contentType string
		content     string
	}{
		"big.txt": {"text/plain", strings.Repeat("x", 2048)},
	})

	_, err := svc.UploadBatch(context.Background(), nil, headers, "docs")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)
	assert.Zero(t, store.saves)
}

func TestUploadBatchRejectsEmptyBatch(t *testing.T) {
	svc := newTestUploadService(&fakeStorage{})

	_, err := svc.UploadBatch(context.Background(), nil, nil, "docs")
	require.Error(t, err)
}

func signRequest(filename, mimeType string, size int64) *dto.SignUploadRequest {
	return &dto.SignUploadRequest{
		Filename: filename,
		MimeType: mimeType,
		Size:     size,
		Category: "uploads",
	}
}

func TestSignUploadAppliesPolicyBeforeStorage(t *testing.T) {
	store := &fakeStorage{}
	svc := newTestUploadService(store)

	_, err := svc.SignUpload(context.Background(), signRequest("big.jpg", "image/jpeg", 4096))
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)

	_, err = svc.SignUpload(context.Background(), signRequest("a.exe", "application/octet-stream", 10))
	require.Error(t, err)
	appErr, _ = apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidFileType, appErr.Code)

	assert.Zero(t, store.presigns, "policy violations never reach the storage backend")
}

func TestSignUploadUnsupportedBackend(t *testing.T) {
	svc := newTestUploadService(&fakeStorage{})

	_, err := svc.SignUpload(context.Background(), signRequest("a.jpg", "image/jpeg", 10))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestObjectKeyShape(t *testing.T) {
	key := objectKey("portfolio", "My Photo.JPG")
	assert.True(t, strings.HasPrefix(key, "portfolio/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"), "extension is lowercased: %s", key)
	assert.NotContains(t, key, " ")

	another := objectKey("portfolio", "My Photo.JPG")
	assert.NotEqual(t, key, another, "keys are unique per upload")
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "a/b_thumb.jpg", thumbnailKey("a/b.jpg"))
	assert.Equal(t, "a/b_thumb", thumbnailKey("a/b"))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "general", normalizeCategory(""))
	assert.Equal(t, "general", normalizeCategory("  "))
	assert.Equal(t, "docs", normalizeCategory("/docs/"))
}
