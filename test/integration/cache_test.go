package integration_test

import (
	"net/http"
	"testing"

	"atlasweb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEndpointsRequireSecret(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/cache/clear", "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/revalidate?secret=wrong", "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cache/clear?secret=test-cache-secret", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/revalidate?secret=test-cache-secret&path=/api/v1/services/public", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "revalidated")
}

func TestPublicReadsStayFreshAfterWrite(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Warm the cache.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/team/public", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	name := uniqueTitle("Fresh Member")
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/team", token, map[string]interface{}{
		"name": name,
		"role": "Engineer",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// The write evicted the cached page, so the new member is visible
	// immediately.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/team/public", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, name)
}
