package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"atlasweb_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password in PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")
	raw := user.PasswordHash
	user.PasswordHash = string(hashed)

	require.NoError(t, db.Create(user).Error, "failed to create test user")
	user.PasswordHash = raw
}

// CreateAndLoginAdmin creates an admin with a unique email and logs in
// through the API, returning the access token.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	password := "password123"

	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Name:         "Test Admin",
		Role:         models.UserRoleAdmin,
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}
