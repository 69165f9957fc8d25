package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "HTTPCode")
	assert.Contains(t, string(data), "Internal server error")
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	appErr := InternalError(inner)

	assert.True(t, errors.Is(appErr, inner))

	var target *AppError
	assert.True(t, errors.As(appErr, &target))
	assert.Equal(t, http.StatusInternalServerError, target.HTTPCode)
}

func handleInRecorder(h *GinErrorHandler, err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.HandleGinError(c, err)
	return w
}

func TestGinErrorHandlerSanitizesInProduction(t *testing.T) {
	h := &GinErrorHandler{Debug: false}

	appErr := Wrap(errors.New("dial tcp 10.0.0.5:5432: connect refused"),
		CodeInternalError, "system", "database exploded", http.StatusInternalServerError).
		WithDetails("stack trace here")

	w := handleInRecorder(h, appErr)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "database exploded")
	assert.NotContains(t, w.Body.String(), "stack trace")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestGinErrorHandlerKeepsDetailsInDebug(t *testing.T) {
	h := &GinErrorHandler{Debug: true}

	appErr := New(CodeInternalError, "system", "database exploded", http.StatusInternalServerError)
	w := handleInRecorder(h, appErr)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database exploded")
}

func TestGinErrorHandlerPassesClientErrorsThrough(t *testing.T) {
	h := &GinErrorHandler{Debug: false}

	w := handleInRecorder(h, ContentNotFound("service"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "service not found")

	w = handleInRecorder(h, SlugAlreadyExists("my-post"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "my-post")
}

func TestGinErrorHandlerWrapsUnknownErrors(t *testing.T) {
	h := &GinErrorHandler{Debug: false}

	w := handleInRecorder(h, errors.New("some raw failure"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "some raw failure")
}

func TestDomainErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{ContentNotFound("post"), http.StatusNotFound},
		{SlugAlreadyExists("x"), http.StatusConflict},
		{MediaNotFound(), http.StatusNotFound},
		{FileTooLarge("a.jpg", 10), http.StatusBadRequest},
		{InvalidFileType("a.exe", "application/octet-stream"), http.StatusBadRequest},
		{TooManyFiles(10), http.StatusBadRequest},
		{SignedUploadsUnsupported(), http.StatusBadRequest},
		{InvalidCredentials(), http.StatusUnauthorized},
		{InvalidCacheSecret(), http.StatusForbidden},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.HTTPCode, tc.err.Message)
	}
}
