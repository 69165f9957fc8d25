package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"atlasweb_backend/internal/models"
	"atlasweb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, user.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("creds_%d@test.com", time.Now().UnixNano())
	user := &models.User{
		Email:        email,
		PasswordHash: "correct-password",
		Name:         "Creds Tester",
		Role:         models.UserRoleEditor,
	}
	helpers.CreateUser(t, ts.DB, user)

	// Wrong password and unknown email produce the same response.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res2, body2 := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode, body2)
	assert.Contains(t, body, "invalid email or password")
	assert.Contains(t, body2, "invalid email or password")
}

func TestInvalidTokenRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/services", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
