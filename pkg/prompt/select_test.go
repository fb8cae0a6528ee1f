package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTerm scripts an interaction: keys are consumed from the string and
// every escape sequence the prompt paints lands in the returned buffer.
func testTerm(keys string) (*console.Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	term := console.NewWithIO(strings.NewReader(keys), &out)
	term.SetSize(80, 24)
	return term, &out
}

func TestSelectSubmitsFocusedOption(t *testing.T) {
	term, out := testTerm("\x1b[B\r")

	got, err := NewSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		Option("c", "C").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.Contains(t, out.String(), "│  B")
}

func TestSelectFirstOptionOnPlainEnter(t *testing.T) {
	term, _ := testTerm("\r")

	got, err := NewSelect[int]("pick").
		Option(1, "one").
		Option(2, "two").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSelectWrapsUpToLast(t *testing.T) {
	term, _ := testTerm("\x1b[A\r")

	got, err := NewSelect[string]("pick").
		Option("a", "A").
		Option("b", "B").
		Option("c", "C").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, "c", got)
}

func TestSelectNoOptions(t *testing.T) {
	term, out := testTerm("")

	_, err := NewSelect[string]("pick").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrNoOptions)
	assert.Zero(t, out.Len(), "nothing should be painted")
}

func TestSelectCancel(t *testing.T) {
	term, out := testTerm("\x03")

	cancelled := false
	_, err := NewSelect[string]("pick").
		Option("a", "A").
		OnCancel(func() { cancelled = true }).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrCancelled)
	assert.True(t, cancelled)
	assert.Contains(t, out.String(), "■")
}

func TestSelectEOFCancels(t *testing.T) {
	term, _ := testTerm("")

	_, err := NewSelect[string]("pick").
		Option("a", "A").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSelectPagedPageDown(t *testing.T) {
	term, out := testTerm("\x1b[6~\r")

	got, err := NewSelect[string]("pick").
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
	assert.Equal(t, "d", got)
	assert.Contains(t, out.String(), "(4/5)")
}

func TestSelectPagedProgressPadding(t *testing.T) {
	term, out := testTerm("\r")

	opts := make([]Option[int], 12)
	for i := range opts {
		opts[i] = Opt(i, "item")
	}

	_, err := NewSelect[int]("pick").
		Options(opts...).
		LessAmount(3).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "(01/12)")
}

func TestSelectHintShownOnFocus(t *testing.T) {
	term, out := testTerm("\r")

	_, err := NewSelect[string]("pick").
		OptionHint("a", "A", "the default").
		Option("b", "B").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "(the default)")
}

func TestSelectLessAmountPanics(t *testing.T) {
	assert.Panics(t, func() { NewSelect[string]("pick").LessAmount(0) })
	assert.Panics(t, func() { NewSelect[string]("pick").LessMax(0) })
	assert.Panics(t, func() {
		NewSelect[string]("pick").LessAmount(3).LessMax(5)
	})
}
