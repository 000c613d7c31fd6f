// Package auth wraps what the API needs from the hosted auth provider:
// the identity of the current request and the translation of provider error
// codes into the messages the app shows.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by any mutating operation attempted without
// a signed-in identity, before any store call is made.
var ErrNotAuthenticated = errors.New("user not authenticated")

// Identity is the authenticated user as the provider reports it.
type Identity struct {
	ClerkID string
	Email   string
}

// Provider error codes the UI special-cases. Anything else surfaces the
// provider's own message.
const (
	CodeUserNotFound    = "user-not-found"
	CodeInvalidEmail    = "invalid-email"
	CodeWrongPassword   = "wrong-password"
	CodeTooManyRequests = "too-many-requests"
)

var userMessages = map[string]string{
	CodeUserNotFound:    "No account found with this email address.",
	CodeInvalidEmail:    "The email address is not valid.",
	CodeWrongPassword:   "Incorrect password. Please try again.",
	CodeTooManyRequests: "Too many failed attempts. Please try again later.",
}

// Error is a failure reported by the auth provider.
type Error struct {
	Code    string
	Message string // raw provider message
}

func (e *Error) Error() string {
	return fmt.Sprintf("auth: %s (%s)", e.Message, e.Code)
}

// UserMessage returns the fixed user-facing string for the known codes and
// falls back to the provider's raw message otherwise.
func (e *Error) UserMessage() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return e.Message
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches the verified identity to a request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// CurrentUser extracts the identity set by the auth middleware. The second
// return is false when the request was not authenticated.
func CurrentUser(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
