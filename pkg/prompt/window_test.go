package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestWindowNextWraps(t *testing.T) {
	w := newWindow(3, 0)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i%3, w.focus)
		w.next()
	}
}

func TestWindowPrevWrapsToBottom(t *testing.T) {
	w := newWindow(5, 3)
	w.prevItem()

	assert.Equal(t, 4, w.focus)
	assert.Equal(t, 2, w.offset)
	assert.Equal(t, 2, w.start())
}

func TestWindowScrollKeepsFocusVisible(t *testing.T) {
	w := newWindow(5, 3)

	// walking down past the last row scrolls instead of moving the offset
	for i := 0; i < 4; i++ {
		w.next()
	}
	assert.Equal(t, 4, w.focus)
	assert.Equal(t, 2, w.offset)
	assert.Equal(t, 2, w.start())
}

func TestWindowPageDownClamp(t *testing.T) {
	w := newWindow(5, 3)

	prev := w.pageDown()
	assert.Equal(t, 0, prev)
	assert.Equal(t, 3, w.focus)
	assert.Equal(t, 1, w.offset)
	assert.Equal(t, 2, w.start())

	// second page pins to the last item on the bottom row
	w.pageDown()
	assert.Equal(t, 4, w.focus)
	assert.Equal(t, 2, w.offset)
}

func TestWindowPageUpClamp(t *testing.T) {
	w := newWindow(10, 3)
	for i := 0; i < 8; i++ {
		w.next()
	}
	require.Equal(t, 8, w.focus)

	w.pageUp()
	assert.Equal(t, 5, w.focus)

	w.pageUp()
	w.pageUp()
	assert.Equal(t, 0, w.focus)
	assert.Equal(t, 0, w.offset)
}

func TestLessRowsExplicitAmount(t *testing.T) {
	// amount wins over the terminal size
	assert.Equal(t, 3, lessRows(5, 3, 0, fixedSize(80, 100)))
	// short lists never page
	assert.Equal(t, 0, lessRows(3, 3, 0, fixedSize(80, 100)))
	assert.Equal(t, 0, lessRows(2, 5, 0, fixedSize(80, 100)))
}

func TestLessRowsDerivedFromTerminal(t *testing.T) {
	// 10 rows minus 4 rows of chrome
	assert.Equal(t, 6, lessRows(20, 0, 0, fixedSize(80, 10)))
	// capped by max
	assert.Equal(t, 4, lessRows(20, 0, 4, fixedSize(80, 10)))
	// everything fits
	assert.Equal(t, 0, lessRows(5, 0, 0, fixedSize(80, 10)))
}

func TestLessRowsUnknownSize(t *testing.T) {
	probe := func() (int, int, error) { return 0, 0, errors.New("no tty") }
	assert.Equal(t, 0, lessRows(20, 0, 0, probe))
}
