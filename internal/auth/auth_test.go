package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessageKnownCodes(t *testing.T) {
	cases := map[string]string{
		CodeUserNotFound:    "No account found with this email address.",
		CodeInvalidEmail:    "The email address is not valid.",
		CodeWrongPassword:   "Incorrect password. Please try again.",
		CodeTooManyRequests: "Too many failed attempts. Please try again later.",
	}

	for code, want := range cases {
		err := &Error{Code: code, Message: "raw provider text"}
		assert.Equal(t, want, err.UserMessage())
	}
}

func TestUserMessageUnknownCodeFallsThrough(t *testing.T) {
	err := &Error{Code: "network-request-failed", Message: "A network error occurred."}
	assert.Equal(t, "A network error occurred.", err.UserMessage())
}

func TestIdentityContextRoundtrip(t *testing.T) {
	ctx := context.Background()

	_, ok := CurrentUser(ctx)
	assert.False(t, ok, "no identity on a bare context")

	id := Identity{ClerkID: "user_123", Email: "a@b.co"}
	ctx = WithIdentity(ctx, id)

	got, ok := CurrentUser(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
