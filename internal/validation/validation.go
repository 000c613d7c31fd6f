// Package validation holds the account-form checks the mobile client runs
// before calling the auth provider. Kept server-side too so the API rejects
// bad payloads with the same field messages the app shows.
package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// SignInForm is the login form.
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateEmail checks presence and shape. The pattern is evaluated on the
// lowercased value; anything with text@text.text passes.
func ValidateEmail(email string) (string, bool) {
	if email == "" {
		return "Email is required", false
	}
	if !emailRegex.MatchString(strings.ToLower(email)) {
		return "Please enter a valid email", false
	}
	return "", true
}

// Validate returns a field -> message map; empty means the form may be
// submitted. Only absent or too-short values fail, never malformed-but-present
// ones (apart from the email pattern).
func (f RegisterForm) Validate() map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if msg, ok := ValidateEmail(f.Email); !ok {
		errs["email"] = msg
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if f.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if !f.AcceptTerms {
		errs["terms"] = "Please accept the terms and conditions"
	}

	return errs
}

// Validate mirrors the login screen: both fields present, email well-formed.
func (f SignInForm) Validate() map[string]string {
	errs := map[string]string{}
	if msg, ok := ValidateEmail(f.Email); !ok {
		errs["email"] = msg
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}
