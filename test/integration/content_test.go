package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"atlasweb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueTitle(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

func TestServiceCRUD(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	title := uniqueTitle("Web Development")

	// Create, with list field given as comma-separated free text.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/services", token, map[string]interface{}{
		"title":       title,
		"description": "Full-stack web development",
		"features":    "React, Node.js, Postgres",
		"price":       "from $5000",
		"order":       3,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Features []string `json:"features"`
		IsActive bool     `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, title, created.Title)
	assert.Equal(t, []string{"React", "Node.js", "Postgres"}, created.Features)
	assert.True(t, created.IsActive, "services default to active")

	// Partial update: only the price changes, features survive.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/services/"+created.ID, token, map[string]interface{}{
		"price": "from $7000",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated struct {
		Price     string   `json:"price"`
		Features  []string `json:"features"`
		UpdatedAt string   `json:"updatedAt"`
		CreatedAt string   `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "from $7000", updated.Price)
	assert.Equal(t, []string{"React", "Node.js", "Postgres"}, updated.Features)

	// Delete, then 404.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/services/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/services/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/services/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServiceListReplacedWhole(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/services", token, map[string]interface{}{
		"title":    uniqueTitle("Consulting"),
		"features": []string{"Audit", "Roadmap", "Training"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/services/"+created.ID, token, map[string]interface{}{
		"features": []string{"Audit"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated struct {
		Features []string `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, []string{"Audit"}, updated.Features, "a present list field replaces the stored list wholly")
}

func TestPublicServicesVisibilityAndOrder(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	first := uniqueTitle("Public First")
	second := uniqueTitle("Public Second")
	hidden := uniqueTitle("Hidden Service")

	for _, svc := range []map[string]interface{}{
		{"title": second, "order": 220},
		{"title": first, "order": 210},
		{"title": hidden, "order": 215, "isActive": false},
	} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/services", token, svc)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/services/public", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Contains(t, body, first)
	assert.Contains(t, body, second)
	assert.NotContains(t, body, hidden, "inactive services never reach the public list")
	assert.Less(t, strings.Index(body, first), strings.Index(body, second), "public list sorts by order")
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/services"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/contacts"},
		{http.MethodGet, "/api/v1/media"},
	}
	for _, p := range paths {
		res, _ := ts.SendRequest(t, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s should require a token", p.method, p.path)
	}
}

func TestFeaturedProjects(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	featured := uniqueTitle("Featured Project")
	regular := uniqueTitle("Regular Project")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":        featured,
		"isFeatured":   true,
		"technologies": "Go, Postgres",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title": regular,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/featured?limit=20", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, featured)
	assert.NotContains(t, body, regular)
}
