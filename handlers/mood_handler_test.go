package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyReflectAPI/internal/mood"
)

func TestGetMoods(t *testing.T) {
	h := NewMoodHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil)
	rr := httptest.NewRecorder()
	h.GetMoods(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var moods []mood.Mood
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &moods))
	assert.Len(t, moods, 5)
	assert.Equal(t, "amazing", moods[0].Value)
}

func TestGetDailyPrompt(t *testing.T) {
	h := NewMoodHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-prompt", nil)
	rr := httptest.NewRecorder()
	h.GetDailyPrompt(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, mood.DailyPrompt, resp["prompt"])
}

func TestSelectMood(t *testing.T) {
	h := NewMoodHandler()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mood/select", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		h.SelectMood(rr, req)
		return rr
	}

	// A positive mood selects directly.
	rr := post(`{"mood": "good"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp selectMoodResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, mood.StateSelected, resp.State)
	assert.Empty(t, resp.Prompt)

	// A low mood opens the reflection prompt.
	rr = post(`{"mood": "awful"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, mood.StatePromptOpen, resp.State)
	assert.Equal(t, "How did your awful day make you feel?", resp.Prompt)

	// Confirming yields the navigation intent.
	rr = post(`{"mood": "awful", "action": "confirm"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, mood.StateNavigating, resp.State)
	require.NotNil(t, resp.Intent)
	assert.Equal(t, "Awful", resp.Intent.Mood)

	// Declining returns to idle with no intent.
	rr = post(`{"mood": "not-great", "action": "decline"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	resp = selectMoodResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, mood.StateIdle, resp.State)
	assert.Nil(t, resp.Intent)

	// Unknown moods are a client error.
	rr = post(`{"mood": "notGreat"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
