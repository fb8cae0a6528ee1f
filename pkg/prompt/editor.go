package prompt

import (
	"unicode"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
	"github.com/mattn/go-runewidth"
)

// editor is a minimal single-line editor used by the input prompts. It paints
// a styled prompt followed by the buffer (or a dimmed placeholder while the
// buffer is empty) and supports the usual cursor and erase keys.
type editor struct {
	term        *console.Terminal
	r           *console.Renderer
	theme       *style.Theme
	prompt      string
	promptWidth int
	placeholder string

	buf []rune
	pos int
}

func newEditor(t *console.Terminal, r *console.Renderer, th *style.Theme, prompt string, promptWidth int, placeholder string) *editor {
	return &editor{
		term:        t,
		r:           r,
		theme:       th,
		prompt:      prompt,
		promptWidth: promptWidth,
		placeholder: placeholder,
	}
}

// readLine edits a line seeded with initial until enter submits it or the
// user cancels. The cursor is left on the line below the input row either
// way, like a cooked-mode read would.
func (e *editor) readLine(initial string) (string, error) {
	e.buf = []rune(initial)
	e.pos = len(e.buf)
	e.refresh()
	if err := e.r.Flush(); err != nil {
		return "", err
	}

	for {
		k, err := readKey(e.term)
		if err != nil {
			return "", err
		}

		switch k.Kind {
		case console.KeyEnter:
			e.r.Println("")
			return string(e.buf), e.r.Flush()

		case console.KeyCtrlC, console.KeyCtrlD:
			e.r.Println("")
			if err := e.r.Flush(); err != nil {
				return "", err
			}
			return "", ErrCancelled

		case console.KeyBackspace:
			if e.pos > 0 {
				e.buf = append(e.buf[:e.pos-1], e.buf[e.pos:]...)
				e.pos--
				e.refresh()
			}

		case console.KeyDelete:
			if e.pos < len(e.buf) {
				e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
				e.refresh()
			}

		case console.KeyLeft:
			if e.pos > 0 {
				e.pos--
				e.refresh()
			}

		case console.KeyRight:
			if e.pos < len(e.buf) {
				e.pos++
				e.refresh()
			}

		case console.KeyHome:
			e.pos = 0
			e.refresh()

		case console.KeyEnd:
			e.pos = len(e.buf)
			e.refresh()

		case console.KeyRune:
			if unicode.IsPrint(k.Rune) {
				e.buf = append(e.buf[:e.pos], append([]rune{k.Rune}, e.buf[e.pos:]...)...)
				e.pos++
				e.refresh()
			}
		}

		if err := e.r.Flush(); err != nil {
			return "", err
		}
	}
}

// refresh repaints the whole input row and parks the cursor at the edit
// position.
func (e *editor) refresh() {
	line := e.prompt + string(e.buf)
	if len(e.buf) == 0 && e.placeholder != "" {
		line = e.prompt + e.theme.Dim(e.placeholder)
	}
	e.r.PaintLine(line)
	e.r.Column(e.promptWidth + runewidth.StringWidth(string(e.buf[:e.pos])))
}
