package handlers

import (
	"encoding/json"
	"net/http"

	"dailyReflectAPI/internal/mood"
)

// MoodHandler serves the mood catalog and runs the home-screen selection
// flow. The catalog is fixed at build time, so there is no service behind it.
type MoodHandler struct{}

func NewMoodHandler() *MoodHandler {
	return &MoodHandler{}
}

func (h *MoodHandler) GetMoods(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, mood.All())
}

func (h *MoodHandler) GetCompactMoods(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, mood.AllCompact())
}

func (h *MoodHandler) GetDailyPrompt(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"prompt": mood.DailyPrompt})
}

type selectMoodRequest struct {
	Mood string `json:"mood"`
	// One selection step per request. "select" picks the mood, "confirm"
	// commits it into a navigation intent, "decline" dismisses the prompt.
	Action string `json:"action"`
}

type selectMoodResponse struct {
	State  mood.State      `json:"state"`
	Prompt string          `json:"prompt,omitempty"`
	Intent *mood.NavIntent `json:"intent,omitempty"`
}

// SelectMood replays the selection flow for one mood value. The flow itself
// is stateless between requests: the client tells us how far the user got.
func (h *MoodHandler) SelectMood(w http.ResponseWriter, r *http.Request) {
	var req selectMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Action == "" {
		req.Action = "select"
	}

	sel := mood.NewSelection()
	state, err := sel.Select(req.Mood)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Unknown mood")
		return
	}

	switch req.Action {
	case "select":
		resp := selectMoodResponse{State: state}
		if state == mood.StatePromptOpen {
			resp.Prompt = mood.PromptFor(sel.Mood())
		}
		respondWithJSON(w, http.StatusOK, resp)

	case "confirm":
		intent, ok := sel.Confirm()
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Nothing to confirm")
			return
		}
		respondWithJSON(w, http.StatusOK, selectMoodResponse{State: sel.State(), Intent: &intent})

	case "decline":
		respondWithJSON(w, http.StatusOK, selectMoodResponse{State: sel.Decline()})

	default:
		respondWithError(w, http.StatusBadRequest, "Unknown action")
	}
}
