package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(signupForm{
		Name:     "John",
		Email:    "john@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(signupForm{})

	require.Error(t, err)
	valErr, ok := err.(*ValidationError)
	require.True(t, ok)

	fields := valErr.Fields()
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
	assert.Equal(t, "is required", fields["Email"])
}

func TestValidate_BadEmail(t *testing.T) {
	err := Validate(signupForm{
		Name:     "John",
		Email:    "not-an-email",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid email address")
}

func TestValidate_TooShort(t *testing.T) {
	err := Validate(signupForm{
		Name:     "John",
		Email:    "john@example.com",
		Password: "abc",
	})

	require.Error(t, err)
	valErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "must be at least 6 characters", valErr.Fields()["Password"])
}
