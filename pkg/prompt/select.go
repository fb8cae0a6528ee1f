package prompt

import (
	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
)

// Select asks the user to pick one option from a list.
//
//	answer, err := prompt.NewSelect[string]("Pick a fruit").
//		Option("mango", "Mango").
//		OptionHint("peach", "Peach", "the best one").
//		Interact()
//
// Interact returns the chosen option's value, ErrCancelled or ErrNoOptions.
type Select[T any] struct {
	message  string
	options  []Option[T]
	less     bool
	lessAmt  int
	lessMax  int
	onCancel func()

	term  *console.Terminal
	theme *style.Theme
}

// NewSelect creates a single-select prompt with the given message.
func NewSelect[T any](message string) *Select[T] {
	return &Select[T]{message: message}
}

// Option adds an option without a hint.
func (s *Select[T]) Option(value T, label string) *Select[T] {
	s.options = append(s.options, Opt(value, label))
	return s
}

// OptionHint adds an option with a hint shown while it has focus.
func (s *Select[T]) OptionHint(value T, label, hint string) *Select[T] {
	s.options = append(s.options, OptHint(value, label, hint))
	return s
}

// Options replaces the option list.
func (s *Select[T]) Options(opts ...Option[T]) *Select[T] {
	s.options = opts
	return s
}

// Less enables paging with a row budget derived from the terminal height.
func (s *Select[T]) Less() *Select[T] {
	s.less = true
	return s
}

// LessAmount enables paging with an explicit number of visible rows.
// Panics if amount is zero or LessMax was already set.
func (s *Select[T]) LessAmount(amount int) *Select[T] {
	if amount <= 0 {
		panic("less amount must be greater than zero")
	}
	if s.lessMax > 0 {
		panic("cannot set both less amount and less max")
	}
	s.less = true
	s.lessAmt = amount
	return s
}

// LessMax enables terminal-derived paging capped at max rows.
// Panics if max is zero or LessAmount was already set.
func (s *Select[T]) LessMax(max int) *Select[T] {
	if max <= 0 {
		panic("less max must be greater than zero")
	}
	if s.lessAmt > 0 {
		panic("cannot set both less amount and less max")
	}
	s.less = true
	s.lessMax = max
	return s
}

// OnCancel sets a callback run after the prompt is cancelled.
func (s *Select[T]) OnCancel(fn func()) *Select[T] {
	s.onCancel = fn
	return s
}

// WithTerminal overrides the terminal, mainly for scripted tests.
func (s *Select[T]) WithTerminal(t *console.Terminal) *Select[T] {
	s.term = t
	return s
}

// WithTheme overrides the glyph/style theme.
func (s *Select[T]) WithTheme(th *style.Theme) *Select[T] {
	s.theme = th
	return s
}

// Interact paints the prompt and blocks until the user submits or cancels.
func (s *Select[T]) Interact() (T, error) {
	var zero T
	if len(s.options) == 0 {
		return zero, ErrNoOptions
	}
	s.term = defaultTerminal(s.term)
	s.theme = defaultTheme(s.theme)

	rows := 0
	if s.less {
		rows = lessRows(len(s.options), s.lessAmt, s.lessMax, s.term.Size)
	}

	r := console.NewRenderer(s.term)
	var result T
	err := s.term.Raw(true, func() error {
		w := newWindow(len(s.options), rows)

		if rows > 0 {
			s.paintInitLess(r, w)
		} else {
			s.paintInit(r)
		}
		if err := r.Flush(); err != nil {
			return err
		}

		idx := 0
		for {
			k, err := readKey(s.term)
			if err != nil {
				return err
			}

			switch k.Kind {
			case console.KeyUp, console.KeyLeft:
				if rows > 0 {
					prev := w.prevItem()
					s.drawLess(r, w, prev)
				} else {
					s.draw(r, s.unfocusLine(s.options[idx]))
					if idx > 0 {
						idx--
						r.Up(1)
					} else {
						idx = len(s.options) - 1
						r.Down(len(s.options) - 1)
					}
					s.draw(r, s.focusLine(s.options[idx]))
				}

			case console.KeyDown, console.KeyRight:
				if rows > 0 {
					prev := w.next()
					s.drawLess(r, w, prev)
				} else {
					s.draw(r, s.unfocusLine(s.options[idx]))
					if idx < len(s.options)-1 {
						idx++
						r.Down(1)
					} else {
						idx = 0
						r.Up(len(s.options) - 1)
					}
					s.draw(r, s.focusLine(s.options[idx]))
				}

			case console.KeyPageDown:
				if rows > 0 {
					prev := w.pageDown()
					s.drawLess(r, w, prev)
				}

			case console.KeyPageUp:
				if rows > 0 {
					prev := w.pageUp()
					s.drawLess(r, w, prev)
				}

			case console.KeyEnter:
				if rows > 0 {
					idx = w.focus
					s.paintSubmitLess(r, w)
				} else {
					s.paintSubmit(r, idx)
				}
				result = s.options[idx].Value
				return r.Flush()

			case console.KeyCtrlC, console.KeyCtrlD:
				if rows > 0 {
					idx = w.focus
					s.paintCancelLess(r, w)
				} else {
					s.paintCancel(r, idx)
				}
				if err := r.Flush(); err != nil {
					return err
				}
				if s.onCancel != nil {
					s.onCancel()
				}
				return ErrCancelled
			}

			if err := r.Flush(); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

func (s *Select[T]) focusLine(o Option[T]) string {
	th := s.theme
	label := truncLabel(s.term, th.Glyphs.RadioActive, o.Label, hintReserve(o.Hint))
	line := th.Green(th.Glyphs.RadioActive) + " " + label
	if o.Hint != "" {
		line += " " + th.Dim("("+o.Hint+")")
	}
	return line
}

func (s *Select[T]) unfocusLine(o Option[T]) string {
	th := s.theme
	label := truncLabel(s.term, th.Glyphs.RadioInactive, o.Label, 0)
	return th.Dim(th.Glyphs.RadioInactive) + " " + th.Dim(label)
}

// draw repaints the current (focused) row in place.
func (s *Select[T]) draw(r *console.Renderer, line string) {
	r.PaintLine(s.theme.Cyan(s.theme.Glyphs.Bar) + "  " + line)
}

// drawLess repaints the whole visible window plus the progress row, locating
// the previous frame via its focus offset, then re-focuses the current row.
func (s *Select[T]) drawLess(r *console.Renderer, w *window, prevOffset int) {
	th := s.theme
	r.PrevLine(prevOffset)
	r.Column(0)

	for i := 0; i < w.rows; i++ {
		opt := s.options[w.start()+i]
		r.ClearLine()
		r.Println(th.Cyan(th.Glyphs.Bar) + "  " + s.unfocusLine(opt))
	}

	r.ClearLine()
	r.Println(th.Cyan(th.Glyphs.Bar) + "  " + progressLine(w.focus, len(s.options)))

	r.PrevLine(w.rows + 1)
	r.NextLine(w.offset)
	s.draw(r, s.focusLine(s.options[w.focus]))
}

func (s *Select[T]) paintInit(r *console.Renderer) {
	th := s.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + s.message)
	for _, opt := range s.options {
		r.Println(th.Cyan(th.Glyphs.Bar) + "  " + s.unfocusLine(opt))
	}
	r.Print(th.Cyan(th.Glyphs.BarEnd))

	r.PrevLine(len(s.options))
	s.draw(r, s.focusLine(s.options[0]))
}

func (s *Select[T]) paintInitLess(r *console.Renderer, w *window) {
	th := s.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + s.message)

	s.drawLess(r, w, 0)

	r.NextLine(w.rows)
	r.Println("")
	r.Print(th.Cyan(th.Glyphs.BarEnd))

	r.PrevLine(w.rows + 1)
	s.draw(r, s.focusLine(s.options[0]))
}

// paintSubmit collapses the option list to a single dimmed answer line under
// the submitted header.
func (s *Select[T]) paintSubmit(r *console.Renderer, idx int) {
	th := s.theme
	r.PrevLine(idx + 1)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + s.message)

	for range s.options {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")

	r.PrevLine(len(s.options) + 1)
	r.Println(th.Glyphs.Bar + "  " + th.Dim(s.options[idx].Label))
}

func (s *Select[T]) paintSubmitLess(r *console.Renderer, w *window) {
	th := s.theme
	r.PrevLine(w.offset)
	r.PrevLine(1)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + s.message)

	for i := 0; i < w.rows; i++ {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")
	r.ClearLine()
	r.Println("")

	r.PrevLine(w.rows + 2)
	r.Println(th.Glyphs.Bar + "  " + th.Dim(s.options[w.focus].Label))
}

func (s *Select[T]) paintCancel(r *console.Renderer, idx int) {
	th := s.theme
	r.PrevLine(idx + 1)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + s.message)

	for range s.options {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")

	r.PrevLine(len(s.options) + 1)
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim(s.options[idx].Label))
}

func (s *Select[T]) paintCancelLess(r *console.Renderer, w *window) {
	th := s.theme
	r.PrevLine(w.offset)
	r.PrevLine(1)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + s.message)

	for i := 0; i < w.rows; i++ {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")
	r.ClearLine()
	r.Println("")

	r.PrevLine(w.rows + 2)
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim(s.options[w.focus].Label))
}
