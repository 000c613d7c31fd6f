package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dailyReflectAPI/internal/auth"
	"dailyReflectAPI/internal/settings"
	"dailyReflectAPI/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	prefs, err := h.settingsService.GetSettings(ctx, id.ClerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	respondWithJSON(w, http.StatusOK, prefs)
}

// UpdateSettings takes the full settings object. Unknown theme values are
// dropped on load, so a bad write degrades to the default rather than 500ing.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	var prefs settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.settingsService.UpdateSettings(ctx, id.ClerkID, prefs)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	respondWithJSON(w, http.StatusOK, saved)
}
