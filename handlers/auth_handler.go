package handlers

import (
	"encoding/json"
	"net/http"

	"dailyReflectAPI/internal/validation"
)

// AuthHandler runs the sign-up / sign-in form checks the app shows inline,
// before anything is sent to the auth provider.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ValidateRegister(w http.ResponseWriter, r *http.Request) {
	var form validation.RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		respondWithFieldErrors(w, errs)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (h *AuthHandler) ValidateSignIn(w http.ResponseWriter, r *http.Request) {
	var form validation.SignInForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		respondWithFieldErrors(w, errs)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"valid": true})
}
