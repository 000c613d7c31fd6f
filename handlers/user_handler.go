package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dailyReflectAPI/internal/auth"
	"dailyReflectAPI/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	u, err := h.userService.GetUserByClerkID(ctx, id.ClerkID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	respondWithJSON(w, http.StatusOK, u)
}

func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	if err := h.userService.DeleteUserByClerkID(ctx, id.ClerkID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondNotAuthenticated rejects a protected operation reached without an
// identity, before any store call is made.
func respondNotAuthenticated(w http.ResponseWriter) {
	respondWithError(w, http.StatusUnauthorized, auth.ErrNotAuthenticated.Error())
}

// respondWithFieldErrors returns the per-field validation messages the forms
// render inline.
func respondWithFieldErrors(w http.ResponseWriter, errs map[string]string) {
	respondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}
