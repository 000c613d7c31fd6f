package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	all := All()
	require.Len(t, all, 5)

	// Severity runs 5..1 top to bottom, each exactly once.
	seen := map[int]bool{}
	for i, m := range all {
		assert.Equal(t, 5-i, m.Severity)
		assert.False(t, seen[m.Severity], "severity %d appears twice", m.Severity)
		seen[m.Severity] = true

		assert.NotEmpty(t, m.Value)
		assert.NotEmpty(t, m.Label)
		assert.NotEmpty(t, m.Emoji)
		assert.NotEmpty(t, m.Color)
		assert.NotEmpty(t, m.Description)
	}
}

func TestCompactCatalogMatchesDetailed(t *testing.T) {
	all := All()
	compact := AllCompact()
	require.Equal(t, len(all), len(compact))

	for i := range all {
		assert.Equal(t, all[i].Value, compact[i].Value)
		assert.Equal(t, all[i].Label, compact[i].Label)
		assert.Equal(t, all[i].Emoji, compact[i].Emoji)
	}
}

func TestLookup(t *testing.T) {
	m, err := Lookup(ValueNotGreat)
	require.NoError(t, err)
	assert.Equal(t, "Not Great", m.Label)
	assert.Equal(t, 2, m.Severity)

	_, err = Lookup("notGreat")
	assert.ErrorIs(t, err, ErrNotFound, "the old camelCase spelling is not a catalog value")

	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, IsValid(ValueAmazing))
	assert.False(t, IsValid("ecstatic"))
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Label = "mutated"
	b := All()
	assert.Equal(t, "Amazing", b[0].Label)
}

func TestSelectionPositiveMood(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, StateIdle, sel.State())

	state, err := sel.Select(ValueGood)
	require.NoError(t, err)
	assert.Equal(t, StateSelected, state)

	intent, ok := sel.Confirm()
	require.True(t, ok)
	assert.Equal(t, StateNavigating, sel.State())
	assert.Equal(t, "Good", intent.Mood)
	assert.Equal(t, "🙂", intent.MoodEmoji)
	assert.Equal(t, "How did your good day make you feel?", intent.Prompt)
}

func TestSelectionNegativeMoodOpensPrompt(t *testing.T) {
	for _, value := range []string{ValueNotGreat, ValueAwful} {
		sel := NewSelection()
		state, err := sel.Select(value)
		require.NoError(t, err)
		assert.Equal(t, StatePromptOpen, state, "severity <= 2 opens the prompt")
	}

	for _, value := range []string{ValueOkay, ValueGood, ValueAmazing} {
		sel := NewSelection()
		state, err := sel.Select(value)
		require.NoError(t, err)
		assert.Equal(t, StateSelected, state)
	}
}

func TestSelectionDecline(t *testing.T) {
	sel := NewSelection()
	_, err := sel.Select(ValueAwful)
	require.NoError(t, err)

	state := sel.Decline()
	assert.Equal(t, StateIdle, state)
	assert.Equal(t, Mood{}, sel.Mood())

	// Declining again is a no-op.
	assert.Equal(t, StateIdle, sel.Decline())

	// Nothing to confirm after a decline.
	_, ok := sel.Confirm()
	assert.False(t, ok)
}

func TestSelectionUnknownValue(t *testing.T) {
	sel := NewSelection()
	_, err := sel.Select(ValueGood)
	require.NoError(t, err)

	state, err := sel.Select("bogus")
	assert.Error(t, err)
	assert.Equal(t, StateSelected, state, "an unknown value must not move the machine")
}

func TestSelectionConfirmFromPrompt(t *testing.T) {
	sel := NewSelection()
	_, err := sel.Select(ValueAwful)
	require.NoError(t, err)

	intent, ok := sel.Confirm()
	require.True(t, ok)
	assert.Equal(t, "Awful", intent.Mood)
	assert.Equal(t, "How did your awful day make you feel?", intent.Prompt)

	// Terminal: a second confirm yields nothing.
	_, ok = sel.Confirm()
	assert.False(t, ok)
}

func TestSelectionReset(t *testing.T) {
	sel := NewSelection()
	_, err := sel.Select(ValueAmazing)
	require.NoError(t, err)

	sel.Reset()
	assert.Equal(t, StateIdle, sel.State())
	assert.Equal(t, Mood{}, sel.Mood())
}
