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

func TestContactSubmission(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("visitor_%d@example.com", time.Now().UnixNano())

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":    "  Jane Visitor  ",
		"email":   email,
		"message": "I would like a quote for a new marketing site.",
		"company": "Visitor LLC",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.ID)

	// Admin sees the submission with status NEW and trimmed fields.
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/contacts/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var contact struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &contact))
	assert.Equal(t, "Jane Visitor", contact.Name)
	assert.Equal(t, email, contact.Email)
	assert.Equal(t, "NEW", contact.Status)
}

func TestContactValidation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing email", map[string]interface{}{
			"name":    "Jane",
			"message": "A sufficiently long message body here.",
		}},
		{"malformed email", map[string]interface{}{
			"name":    "Jane",
			"email":   "not-an-email",
			"message": "A sufficiently long message body here.",
		}},
		{"message too short", map[string]interface{}{
			"name":    "Jane",
			"email":   "jane@example.com",
			"message": "hi",
		}},
		{"name too short", map[string]interface{}{
			"name":    "J",
			"email":   "jane@example.com",
			"message": "A sufficiently long message body here.",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
		})
	}
}

func TestContactStatusWorkflow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":    "Status Tester",
		"email":   fmt.Sprintf("status_%d@example.com", time.Now().UnixNano()),
		"message": "Please move me through the workflow.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/contacts/"+created.ID, token, map[string]interface{}{
		"status": "IN_PROGRESS",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "IN_PROGRESS")

	// Unknown status values are rejected.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/contacts/"+created.ID, token, map[string]interface{}{
		"status": "DONE_MAYBE",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
