package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
		msg   string
	}{
		{"", false, "Email is required"},
		{"a@b.co", true, ""},
		{"A@B.CO", true, ""}, // matched on the lowercased value
		{"user.name+tag@sub.example.com", true, ""},
		{"a@b", false, "Please enter a valid email"},
		{"a b@c.d", false, "Please enter a valid email"},
		{"@example.com", false, "Please enter a valid email"},
		{"plain", false, "Please enter a valid email"},
	}

	for _, tc := range cases {
		msg, ok := ValidateEmail(tc.email)
		assert.Equal(t, tc.ok, ok, "email %q", tc.email)
		assert.Equal(t, tc.msg, msg, "email %q", tc.email)
	}
}

func TestRegisterFormValidate(t *testing.T) {
	// Empty form: every field carries its message.
	errs := RegisterForm{}.Validate()
	require.Len(t, errs, 5)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.Equal(t, "Please confirm your password", errs["confirmPassword"])
	assert.Equal(t, "Please accept the terms and conditions", errs["terms"])

	// Present-but-short values get the length messages.
	errs = RegisterForm{
		Name:            " J ",
		Email:           "j@example.com",
		Password:        "12345",
		ConfirmPassword: "12345",
		AcceptTerms:     true,
	}.Validate()
	assert.Equal(t, "Name must be at least 2 characters", errs["name"])
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])

	// Mismatched confirmation.
	errs = RegisterForm{
		Name:            "Jo",
		Email:           "j@example.com",
		Password:        "123456",
		ConfirmPassword: "654321",
		AcceptTerms:     true,
	}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])

	// Valid form passes.
	errs = RegisterForm{
		Name:            "Jo",
		Email:           "j@example.com",
		Password:        "123456",
		ConfirmPassword: "123456",
		AcceptTerms:     true,
	}.Validate()
	assert.Empty(t, errs)
}

func TestSignInFormValidate(t *testing.T) {
	errs := SignInForm{}.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])

	errs = SignInForm{Email: "not-an-email", Password: "x"}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Please enter a valid email", errs["email"])

	errs = SignInForm{Email: "a@b.co", Password: "secret"}.Validate()
	assert.Empty(t, errs)
}
