package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=ROLE_USER ROLE_ADMIN"`
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Struct(sample{Email: "nope", Password: "short"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a valid email", verr.Fields["email"])
	assert.Equal(t, "must have at least 8 characters", verr.Fields["password"])
}

func TestValidator_Dive(t *testing.T) {
	err := New().Struct(sample{Email: "a@b.co", Password: "12345678", Roles: []string{"ROLE_ROOT"}})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "roles[0]")
}

func TestValidator_OK(t *testing.T) {
	assert.NoError(t, New().Struct(sample{Email: "a@b.co", Password: "12345678"}))
}
