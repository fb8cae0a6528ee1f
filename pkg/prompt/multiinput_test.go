package prompt

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/alantheprice/goclack/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiInputCollectsUntilEmptySubmit(t *testing.T) {
	term, out := testTerm("a\rb\r\r")

	got, err := NewMultiInput("aliases?").
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Contains(t, out.String(), "│  a")
	assert.Contains(t, out.String(), "│  b")
}

func TestMultiInputMinEnforced(t *testing.T) {
	// the empty submit after "a" is below the minimum and re-prompts
	term, out := testTerm("a\r\rb\r\r")

	got, err := NewMultiInput("aliases?").
		Min(2).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Contains(t, out.String(), "minimum 2")
}

func TestMultiInputMaxAutoSubmits(t *testing.T) {
	// no trailing empty submit needed at the maximum
	term, _ := testTerm("a\rb\r")

	got, err := NewMultiInput("aliases?").
		Max(2).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMultiInputValidate(t *testing.T) {
	term, out := testTerm("bad words\r\x1b[F" + strings.Repeat("\x7f", 6) + "\r\r")

	got, err := NewMultiInput("aliases?").
		Validate(func(s string) error {
			if strings.ContainsRune(s, ' ') {
				return errors.New("whitespace is disallowed")
			}
			return nil
		}).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	require.NoError(t, err)
	assert.Equal(t, []string{"bad"}, got)
	assert.Contains(t, out.String(), "whitespace is disallowed")
}

func TestMultiInputCancelPartway(t *testing.T) {
	term, out := testTerm("a\r\x03")

	cancelled := false
	_, err := NewMultiInput("aliases?").
		OnCancel(func() { cancelled = true }).
		WithTerminal(term).
		WithTheme(style.Plain()).
		Interact()

	assert.ErrorIs(t, err, ErrCancelled)
	assert.True(t, cancelled)
	assert.Contains(t, out.String(), "cancelled")
}

func TestParseMulti(t *testing.T) {
	term, _ := testTerm("1\r2\r3\r\r")

	got, err := ParseMulti(NewMultiInput("numbers?").
		WithTerminal(term).
		WithTheme(style.Plain()), strconv.Atoi)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestParseMultiRepromptsOnBadValue(t *testing.T) {
	term, out := testTerm("x\r\x7f5\r\r")

	got, err := ParseMulti(NewMultiInput("numbers?").
		WithTerminal(term).
		WithTheme(style.Plain()), strconv.Atoi)

	require.NoError(t, err)
	assert.Equal(t, []int{5}, got)
	assert.Contains(t, out.String(), "invalid syntax")
}
