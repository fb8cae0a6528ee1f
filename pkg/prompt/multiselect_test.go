package prompt

import (
	"testing"

	"github.com/alantheprice/goclack/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSelectTogglesInListOrder(t *testing.T) {
	// check the second option first, then the first: the result is still in
	// list order
	term, out := testTerm("\x1b[B \x1b[A \r")

	got, err := NewMultiSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		Option("c", "C").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Contains(t, out.String(), "A, B")
}

func TestMultiSelectDoubleToggle(t *testing.T) {
	term, out := testTerm("  \r")

	got, err := NewMultiSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, out.String(), "none")
}

func TestMultiSelectEmptySubmit(t *testing.T) {
	term, out := testTerm("\r")

	got, err := NewMultiSelect[string]("pick").
		Option("a", "A").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, out.String(), "none")
}

func TestMultiSelectNoOptions(t *testing.T) {
	term, _ := testTerm("")

	_, err := NewMultiSelect[string]("pick").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestMultiSelectBuilderReuse(t *testing.T) {
	b := NewMultiSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		WithTheme(style.Plain())

	term1, _ := testTerm(" \r")
	got, err := b.WithTerminal(term1).Interact()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	// earlier toggles must not leak into the next interaction
	term2, _ := testTerm("\r")
	got, err = b.WithTerminal(term2).Interact()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMultiSelectPagedToggle(t *testing.T) {
	term, out := testTerm("\x1b[6~ \r")

	got, err := NewMultiSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		Option("c", "C").
		Option("d", "D").
		Option("e", "E").
		LessAmount(3).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, got)
	assert.Contains(t, out.String(), "(4/5)")
}

func TestMultiSelectCancel(t *testing.T) {
	term, out := testTerm(" \x04")

	cancelled := false
	_, err := NewMultiSelect[string]("pick").
		Option("a", "A").
		OnCancel(func() { cancelled = true }).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrCancelled)
	assert.True(t, cancelled)
	assert.Contains(t, out.String(), "A")
}
