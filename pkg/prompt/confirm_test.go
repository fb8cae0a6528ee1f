package prompt

import (
	"testing"

	"github.com/alantheprice/goclack/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDefaultsToFalse(t *testing.T) {
	term, out := testTerm("\r")

	got, err := NewConfirm("proceed?").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "│  no")
}

func TestConfirmArrowFlips(t *testing.T) {
	term, _ := testTerm("\x1b[C\r")

	got, err := NewConfirm("proceed?").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.True(t, got)
}

func TestConfirmInitialValue(t *testing.T) {
	term, _ := testTerm("\r")

	got, err := NewConfirm("proceed?").
		Initial(true).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.True(t, got)
}

func TestConfirmShortcutKeys(t *testing.T) {
	for key, want := range map[string]bool{"y": true, "Y": true, "n": false, "N": false} {
		term, _ := testTerm(key)

		got, err := NewConfirm("proceed?").
			Initial(!want).
			WithTerminal(term).
			WithTheme(style.Plain()).
			Interact()

		require.NoError(t, err)
		assert.Equal(t, want, got, "key %q", key)
	}
}

func TestConfirmCustomPrompts(t *testing.T) {
	term, out := testTerm("y")

	got, err := NewConfirm("overwrite?").
		Prompts("overwrite", "keep").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, out.String(), "overwrite / ")
	assert.Contains(t, out.String(), "│  overwrite")
}

func TestConfirmIgnoresOtherRunes(t *testing.T) {
	term, _ := testTerm("xq\r")

	got, err := NewConfirm("proceed?").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.False(t, got)
}

func TestConfirmCancel(t *testing.T) {
	term, _ := testTerm("\x03")

	cancelled := false
	_, err := NewConfirm("proceed?").
		OnCancel(func() { cancelled = true }).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrCancelled)
	assert.True(t, cancelled)
}
