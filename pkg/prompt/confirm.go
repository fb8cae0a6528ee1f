package prompt

import (
	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
)

// Confirm asks a yes/no question rendered as two radio points.
//
// Arrow keys flip the selection, enter submits it, and 'y' or 'n' submit
// directly without moving the selection first.
type Confirm struct {
	message  string
	initial  bool
	yes      string
	no       string
	onCancel func()

	term  *console.Terminal
	theme *style.Theme
}

// NewConfirm creates a confirm prompt with the given message.
func NewConfirm(message string) *Confirm {
	return &Confirm{message: message, yes: "yes", no: "no"}
}

// Initial sets the value the prompt starts on. Default false.
func (c *Confirm) Initial(v bool) *Confirm {
	c.initial = v
	return c
}

// Prompts replaces the labels shown for true and false.
func (c *Confirm) Prompts(yes, no string) *Confirm {
	c.yes = yes
	c.no = no
	return c
}

// OnCancel sets a callback run after the prompt is cancelled.
func (c *Confirm) OnCancel(fn func()) *Confirm {
	c.onCancel = fn
	return c
}

// WithTerminal overrides the terminal, mainly for scripted tests.
func (c *Confirm) WithTerminal(t *console.Terminal) *Confirm {
	c.term = t
	return c
}

// WithTheme overrides the glyph/style theme.
func (c *Confirm) WithTheme(th *style.Theme) *Confirm {
	c.theme = th
	return c
}

// Interact paints the prompt and blocks until the user submits or cancels.
func (c *Confirm) Interact() (bool, error) {
	c.term = defaultTerminal(c.term)
	c.theme = defaultTheme(c.theme)

	r := console.NewRenderer(c.term)
	var result bool
	err := c.term.Raw(true, func() error {
		c.paintInit(r)
		if err := r.Flush(); err != nil {
			return err
		}

		val := c.initial
		for {
			k, err := readKey(c.term)
			if err != nil {
				return err
			}

			switch k.Kind {
			case console.KeyUp, console.KeyDown, console.KeyLeft, console.KeyRight:
				val = !val
				c.draw(r, val)

			case console.KeyRune:
				switch k.Rune {
				case 'y', 'Y':
					c.paintSubmit(r, true)
					result = true
					return r.Flush()
				case 'n', 'N':
					c.paintSubmit(r, false)
					result = false
					return r.Flush()
				}

			case console.KeyEnter:
				c.paintSubmit(r, val)
				result = val
				return r.Flush()

			case console.KeyCtrlC, console.KeyCtrlD:
				c.paintCancel(r, val)
				if err := r.Flush(); err != nil {
					return err
				}
				if c.onCancel != nil {
					c.onCancel()
				}
				return ErrCancelled
			}

			if err := r.Flush(); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return false, err
	}
	return result, nil
}

func (c *Confirm) radioPnt(active bool, prompt string) string {
	th := c.theme
	if active {
		return th.Green(th.Glyphs.RadioActive) + " " + prompt
	}
	return th.Dim(th.Glyphs.RadioInactive + " " + prompt)
}

func (c *Confirm) radio(val bool) string {
	return c.radioPnt(val, c.yes) + " / " + c.radioPnt(!val, c.no)
}

func (c *Confirm) draw(r *console.Renderer, val bool) {
	r.PaintLine(c.theme.Cyan(c.theme.Glyphs.Bar) + "  " + c.radio(val))
}

func (c *Confirm) answer(val bool) string {
	if val {
		return c.yes
	}
	return c.no
}

func (c *Confirm) paintInit(r *console.Renderer) {
	th := c.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + c.message)
	r.Println(th.Cyan(th.Glyphs.Bar))
	r.Print(th.Cyan(th.Glyphs.BarEnd))

	r.PrevLine(1)
	c.draw(r, c.initial)
}

func (c *Confirm) paintSubmit(r *console.Renderer, val bool) {
	th := c.theme
	r.PrevLine(1)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + c.message)
	r.ClearLine()
	r.Println(th.Glyphs.Bar + "  " + th.Dim(c.answer(val)))
	r.ClearLine()
}

func (c *Confirm) paintCancel(r *console.Renderer, val bool) {
	th := c.theme
	r.PrevLine(1)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + c.message)
	r.ClearLine()
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim(c.answer(val)))
	r.ClearLine()
}
