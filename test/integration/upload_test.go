package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"atlasweb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textFile(name string) helpers.UploadFile {
	return helpers.UploadFile{
		FieldName:   "files",
		Filename:    name,
		ContentType: "text/plain",
		Content:     []byte("hello from " + name),
	}
}

func TestUploadBatch(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, "/api/v1/uploads", token,
		[]helpers.UploadFile{textFile("notes.txt"), textFile("brief.txt")},
		map[string]string{"category": "documents"},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Files []struct {
			ID           string `json:"id"`
			OriginalName string `json:"originalName"`
			Category     string `json:"category"`
			UploadMethod string `json:"uploadMethod"`
			URL          string `json:"url"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Files, 2)
	assert.Equal(t, "notes.txt", resp.Files[0].OriginalName)
	assert.Equal(t, "documents", resp.Files[0].Category)
	assert.Equal(t, "server", resp.Files[0].UploadMethod)
	assert.NotEmpty(t, resp.Files[0].URL)

	// The entries land in the media library.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/media/"+resp.Files[0].ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "notes.txt")
}

func TestUploadBatchRejectsBadMimeWholly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	marker := fmt.Sprintf("survivor_%d.txt", time.Now().UnixNano())

	res, body := ts.SendMultipart(t, "/api/v1/uploads", token,
		[]helpers.UploadFile{
			textFile(marker),
			{FieldName: "files", Filename: "malware.exe", ContentType: "application/octet-stream", Content: []byte("MZ")},
		},
		nil,
	)
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "malware.exe", "the offending filename is reported")

	// The valid file of the rejected batch was not stored either.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/media", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, marker, "batch validation happens before any upload")
}

func TestUploadBatchCountLimit(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	files := make([]helpers.UploadFile, 0, 11)
	for i := 0; i < 11; i++ {
		files = append(files, textFile(fmt.Sprintf("bulk_%d.txt", i)))
	}

	res, body := ts.SendMultipart(t, "/api/v1/uploads", token, files, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "too many files")
}

func TestSignUploadUnsupportedOnLocalStorage(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/sign", token, map[string]interface{}{
		"filename": "photo.jpg",
		"mimeType": "image/jpeg",
		"size":     1024,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "client-direct")
}

func TestSignUploadPolicyApplies(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	// MIME policy rejects before the storage backend is consulted.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/uploads/sign", token, map[string]interface{}{
		"filename": "malware.exe",
		"mimeType": "application/octet-stream",
		"size":     1024,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "not allowed")
}

func TestSaveMediaClientDirect(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/media", token, map[string]interface{}{
		"key":          "portfolio/abc123.jpg",
		"originalName": "site-hero.jpg",
		"mimeType":     "image/jpeg",
		"size":         204800,
		"url":          "https://cdn.example.com/portfolio/abc123.jpg",
		"category":     "portfolio",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var media struct {
		ID           string `json:"id"`
		UploadMethod string `json:"uploadMethod"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &media))
	assert.Equal(t, "direct", media.UploadMethod)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/media/"+media.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/media/"+media.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
