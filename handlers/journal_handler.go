package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dailyReflectAPI/internal/auth"
	"dailyReflectAPI/internal/journal"
	"dailyReflectAPI/internal/notification"
	"dailyReflectAPI/services"
)

type JournalHandler struct {
	journalService *services.JournalService
}

func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

func (h *JournalHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	entries, err := h.journalService.GetEntries(ctx, id.ClerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch journal entries")
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

// CreateEntry validates and saves a new entry. Field errors come back as a
// map so the form can render them inline; nothing is written in that case.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	var draft journal.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft = draft.Normalize(time.Now())
	if errs := draft.Validate(); len(errs) > 0 {
		respondWithFieldErrors(w, errs)
		return
	}

	entry, err := h.journalService.CreateEntry(ctx, id.ClerkID, draft)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create journal entry")
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

// GetReminder tells the client whether to surface today's journal reminder,
// with the notification copy to show.
func (h *JournalHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	due, err := h.journalService.ShouldRemind(ctx, id.ClerkID, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to check reminder")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"shouldRemind": due,
		"title":        notification.ReminderTitle,
		"body":         notification.ReminderBody,
	})
}

func (h *JournalHandler) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	weekly, err := h.journalService.WeeklyMoods(ctx, id.ClerkID, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute weekly stats")
		return
	}

	respondWithJSON(w, http.StatusOK, weekly)
}

func (h *JournalHandler) GetMoodDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	dist, err := h.journalService.MoodDistribution(ctx, id.ClerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute mood distribution")
		return
	}

	respondWithJSON(w, http.StatusOK, dist)
}
