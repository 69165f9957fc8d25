package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Message string  `json:"message" validate:"required,min=10"`
	Status  *string `json:"status" validate:"omitempty,is-contact-status"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "nope", Message: "short"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "message")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:   "jane@example.com",
		Message: "a long enough message",
	})
	assert.NoError(t, err)
}

func TestContactStatusRule(t *testing.T) {
	v := New()

	for _, valid := range []string{"NEW", "IN_PROGRESS", "COMPLETED", "ARCHIVED"} {
		status := valid
		err := v.Validate(&sampleRequest{
			Email:   "jane@example.com",
			Message: "a long enough message",
			Status:  &status,
		})
		assert.NoError(t, err, "status %s should be accepted", valid)
	}

	bad := "DONE_MAYBE"
	err := v.Validate(&sampleRequest{
		Email:   "jane@example.com",
		Message: "a long enough message",
		Status:  &bad,
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid contact status", vErr.Errors["status"])
}
