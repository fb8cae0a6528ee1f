// Package console owns the raw terminal: decoded key input, cursor-relative
// repainting and the raw-mode enter/restore discipline.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is one interactive terminal: a raw key source, a buffered output
// writer and a size probe. Prompts hold exactly one Terminal for the whole
// interaction.
type Terminal struct {
	in   *bufio.Reader
	out  *bufio.Writer
	inFd int
	tty  bool

	width  int
	height int
}

// New returns a Terminal on stdin/stdout.
func New() *Terminal {
	return NewFile(os.Stdin, os.Stdout)
}

// NewFile returns a Terminal on the given files, probing them for TTY
// capabilities. Used with a pty end for integration tests.
func NewFile(in, out *os.File) *Terminal {
	return &Terminal{
		in:   bufio.NewReader(in),
		out:  bufio.NewWriter(out),
		inFd: int(in.Fd()),
		tty:  term.IsTerminal(int(in.Fd())),
	}
}

// NewWithIO returns a Terminal over plain reader/writer pairs. Raw mode and
// cursor visibility toggles become no-ops; the size comes from SetSize.
// Intended for scripted interactions in tests.
func NewWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// SetSize fixes the size reported by Size, overriding the OS probe.
func (t *Terminal) SetSize(width, height int) {
	t.width, t.height = width, height
}

// Size reports the terminal dimensions in columns and rows.
func (t *Terminal) Size() (width, height int, err error) {
	if t.width > 0 && t.height > 0 {
		return t.width, t.height, nil
	}
	if !t.tty {
		return 0, 0, errors.New("terminal size unavailable")
	}
	return term.GetSize(t.inFd)
}

// ReadKey blocks until the next key event arrives.
func (t *Terminal) ReadKey() (Key, error) {
	k, err := readKey(t.in)
	if err != nil {
		return k, err
	}
	tracef("key kind=%d rune=%q", k.Kind, k.Rune)
	return k, nil
}

// Raw runs fn with the terminal in raw mode, optionally hiding the cursor.
// The previous mode and cursor visibility are restored on every exit path,
// including panics inside fn. On a non-TTY both toggles are skipped and fn
// runs directly.
func (t *Terminal) Raw(hideCursor bool, fn func() error) error {
	if !t.tty {
		return fn()
	}

	oldState, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	tracef("raw mode on")
	defer func() {
		if hideCursor {
			t.out.WriteString(showCursorSeq())
		}
		t.out.Flush()
		term.Restore(t.inFd, oldState)
		tracef("raw mode off")
	}()

	if hideCursor {
		t.out.WriteString(hideCursorSeq())
	}
	return fn()
}

// Flush writes any buffered output to the terminal.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}
