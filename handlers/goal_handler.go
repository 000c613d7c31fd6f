package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dailyReflectAPI/internal/auth"
	"dailyReflectAPI/internal/goal"
	"dailyReflectAPI/services"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// GetGoals lists the caller's goals. ?filter=all|active|completed narrows
// the list; anything else reads as all.
func (h *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	filter := goal.ParseFilter(r.URL.Query().Get("filter"))

	goals, err := h.goalService.GetGoals(ctx, id.ClerkID, filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}

	respondWithJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	var draft goal.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft = draft.Normalize(time.Now())
	if errs := draft.Validate(); len(errs) > 0 {
		respondWithFieldErrors(w, errs)
		return
	}

	g, err := h.goalService.CreateGoal(ctx, id.ClerkID, draft)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	respondWithJSON(w, http.StatusCreated, g)
}

// ToggleGoal flips one goal between active and completed.
func (h *GoalHandler) ToggleGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := auth.CurrentUser(ctx)
	if !ok {
		respondNotAuthenticated(w)
		return
	}

	goalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	g, err := h.goalService.ToggleGoal(ctx, id.ClerkID, goalID)
	if err != nil {
		if err.Error() == "goal not found" {
			respondWithError(w, http.StatusNotFound, "Goal not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to toggle goal")
		return
	}

	respondWithJSON(w, http.StatusOK, g)
}
