//go:build !windows

package console

import (
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives the key reader through a real pty so raw-mode entry, escape decoding
// and restore all run against an actual terminal device.
func TestReadKeyThroughPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	term := NewFile(tty, tty)

	go func() {
		// Give the reader a moment to enter raw mode.
		time.Sleep(50 * time.Millisecond)
		ptmx.WriteString("\x1b[B")
		ptmx.WriteString("y")
		ptmx.WriteString("\r")
	}()

	var keys []Key
	err = term.Raw(false, func() error {
		for len(keys) < 3 {
			k, err := term.ReadKey()
			if err != nil {
				return err
			}
			keys = append(keys, k)
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Equal(t, KeyDown, keys[0].Kind)
	assert.Equal(t, KeyRune, keys[1].Kind)
	assert.Equal(t, 'y', keys[1].Rune)
	assert.Equal(t, KeyEnter, keys[2].Kind)
}

func TestSizeOverride(t *testing.T) {
	term := NewWithIO(nil, nil)
	_, _, err := term.Size()
	assert.Error(t, err)

	term.SetSize(80, 24)
	w, h, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
