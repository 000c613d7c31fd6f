package mood

import (
	"fmt"
	"strings"
)

// State of the home-screen mood selection flow.
type State string

const (
	StateIdle       State = "idle"
	StateSelected   State = "selected"
	StatePromptOpen State = "prompt_open"
	StateNavigating State = "navigating"
)

// NavIntent is handed to the journal creation flow once the user commits.
type NavIntent struct {
	Mood      string `json:"mood"`
	MoodEmoji string `json:"moodEmoji"`
	Prompt    string `json:"prompt"`
}

// Selection drives the pick-a-mood flow: Idle -> Selected, then for the two
// most negative moods a "journal about it?" prompt before navigating. All
// transitions are user-driven; there are no failure states.
type Selection struct {
	state State
	mood  Mood
}

func NewSelection() *Selection {
	return &Selection{state: StateIdle}
}

func (s *Selection) State() State {
	return s.state
}

// Mood returns the currently selected mood. Only meaningful outside Idle.
func (s *Selection) Mood() Mood {
	return s.mood
}

// Select picks a mood by catalog value. Severity 1 and 2 open the reflection
// prompt; 3 and up go straight to the selected state with the journal-now
// affordance. Unknown values leave the machine where it was.
func (s *Selection) Select(value string) (State, error) {
	m, err := Lookup(value)
	if err != nil {
		return s.state, err
	}
	s.mood = m
	if m.Severity <= 2 {
		s.state = StatePromptOpen
	} else {
		s.state = StateSelected
	}
	return s.state, nil
}

// Decline dismisses the reflection prompt and resets to Idle.
func (s *Selection) Decline() State {
	if s.state == StatePromptOpen {
		s.state = StateIdle
		s.mood = Mood{}
	}
	return s.state
}

// Confirm accepts the reflection prompt (or the journal-now affordance) and
// yields the navigation intent for the journal creation flow. The machine is
// terminal afterwards; callers build a fresh Selection for the next visit.
func (s *Selection) Confirm() (NavIntent, bool) {
	if s.state != StatePromptOpen && s.state != StateSelected {
		return NavIntent{}, false
	}
	intent := NavIntent{
		Mood:      s.mood.Label,
		MoodEmoji: s.mood.Emoji,
		Prompt:    PromptFor(s.mood),
	}
	s.state = StateNavigating
	return intent, true
}

// Reset returns to Idle from any state ("Change" on the home screen).
func (s *Selection) Reset() {
	s.state = StateIdle
	s.mood = Mood{}
}

// PromptFor builds the reflection prompt for a mood.
func PromptFor(m Mood) string {
	return fmt.Sprintf("How did your %s day make you feel?", strings.ToLower(m.Label))
}
