package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"atlasweb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, ts *helpers.TestServer, token string, body map[string]interface{}) (string, string) {
	res, respBody := ts.SendRequest(t, http.MethodPost, "/api/v1/posts", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, respBody)

	var created struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal([]byte(respBody), &created))
	return created.ID, created.Slug
}

func TestPostSlugGeneration(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	title := uniqueTitle("How We Build APIs")
	_, slug := createPost(t, ts, token, map[string]interface{}{
		"title": title,
	})
	assert.Regexp(t, `^how-we-build-apis-\d+$`, slug, "slug derives from the title")

	// Same title again: the generated slug gets a suffix instead of
	// conflicting.
	_, slug2 := createPost(t, ts, token, map[string]interface{}{
		"title": title,
	})
	assert.NotEqual(t, slug, slug2)
}

func TestPostExplicitSlugConflict(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	slug := uniqueTitle("explicit-slug")
	_, got := createPost(t, ts, token, map[string]interface{}{
		"title": uniqueTitle("First Post"),
		"slug":  slug,
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/posts", token, map[string]interface{}{
		"title": uniqueTitle("Second Post"),
		"slug":  got,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "slug")
}

func TestPublicPostBySlugHidesDrafts(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	draftTitle := uniqueTitle("Draft Post")
	_, draftSlug := createPost(t, ts, token, map[string]interface{}{
		"title":       draftTitle,
		"isPublished": false,
	})

	publishedTitle := uniqueTitle("Published Post")
	_, publishedSlug := createPost(t, ts, token, map[string]interface{}{
		"title":       publishedTitle,
		"isPublished": true,
		"tags":        "go, backend",
	})

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/posts/slug/"+draftSlug, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "drafts are invisible on the public blog")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/posts/slug/"+publishedSlug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, publishedTitle)

	// Public list carries only published posts.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/posts/public", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, publishedTitle)
	assert.NotContains(t, body, draftTitle)
}

func TestPostPublishFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	title := uniqueTitle("Publish Me")
	id, slug := createPost(t, ts, token, map[string]interface{}{
		"title": title,
	})

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/posts/slug/"+slug, "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/posts/"+id, token, map[string]interface{}{
		"isPublished": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/posts/slug/"+slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, title)
}
