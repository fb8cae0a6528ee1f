package prompt

import (
	"slices"
	"strings"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
)

// MultiSelect asks the user to toggle any number of options with the space
// key and submit with enter.
//
// Interact returns the values of the checked options in original list order,
// regardless of toggle order. The configured options are cloned per
// interaction, so a builder can be reused.
type MultiSelect[T any] struct {
	message  string
	options  []Option[T]
	less     bool
	lessAmt  int
	lessMax  int
	onCancel func()

	term  *console.Terminal
	theme *style.Theme
}

// NewMultiSelect creates a multi-select prompt with the given message.
func NewMultiSelect[T any](message string) *MultiSelect[T] {
	return &MultiSelect[T]{message: message}
}

// Option adds an option without a hint.
func (m *MultiSelect[T]) Option(value T, label string) *MultiSelect[T] {
	m.options = append(m.options, Opt(value, label))
	return m
}

// OptionHint adds an option with a hint shown while it has focus.
func (m *MultiSelect[T]) OptionHint(value T, label, hint string) *MultiSelect[T] {
	m.options = append(m.options, OptHint(value, label, hint))
	return m
}

// Options replaces the option list.
func (m *MultiSelect[T]) Options(opts ...Option[T]) *MultiSelect[T] {
	m.options = opts
	return m
}

// Less enables paging with a row budget derived from the terminal height.
func (m *MultiSelect[T]) Less() *MultiSelect[T] {
	m.less = true
	return m
}

// LessAmount enables paging with an explicit number of visible rows.
// Panics if amount is zero or LessMax was already set.
func (m *MultiSelect[T]) LessAmount(amount int) *MultiSelect[T] {
	if amount <= 0 {
		panic("less amount must be greater than zero")
	}
	if m.lessMax > 0 {
		panic("cannot set both less amount and less max")
	}
	m.less = true
	m.lessAmt = amount
	return m
}

// LessMax enables terminal-derived paging capped at max rows.
// Panics if max is zero or LessAmount was already set.
func (m *MultiSelect[T]) LessMax(max int) *MultiSelect[T] {
	if max <= 0 {
		panic("less max must be greater than zero")
	}
	if m.lessAmt > 0 {
		panic("cannot set both less amount and less max")
	}
	m.less = true
	m.lessMax = max
	return m
}

// OnCancel sets a callback run after the prompt is cancelled.
func (m *MultiSelect[T]) OnCancel(fn func()) *MultiSelect[T] {
	m.onCancel = fn
	return m
}

// WithTerminal overrides the terminal, mainly for scripted tests.
func (m *MultiSelect[T]) WithTerminal(t *console.Terminal) *MultiSelect[T] {
	m.term = t
	return m
}

// WithTheme overrides the glyph/style theme.
func (m *MultiSelect[T]) WithTheme(th *style.Theme) *MultiSelect[T] {
	m.theme = th
	return m
}

// Interact paints the prompt and blocks until the user submits or cancels.
func (m *MultiSelect[T]) Interact() ([]T, error) {
	if len(m.options) == 0 {
		return nil, ErrNoOptions
	}
	m.term = defaultTerminal(m.term)
	m.theme = defaultTheme(m.theme)

	// Toggles mutate interaction state only; the builder stays reusable.
	opts := slices.Clone(m.options)

	rows := 0
	if m.less {
		rows = lessRows(len(opts), m.lessAmt, m.lessMax, m.term.Size)
	}

	r := console.NewRenderer(m.term)
	var result []T
	err := m.term.Raw(true, func() error {
		w := newWindow(len(opts), rows)

		if rows > 0 {
			m.paintInitLess(r, opts, w)
		} else {
			m.paintInit(r, opts)
		}
		if err := r.Flush(); err != nil {
			return err
		}

		idx := 0
		for {
			k, err := readKey(m.term)
			if err != nil {
				return err
			}

			switch k.Kind {
			case console.KeyUp, console.KeyLeft:
				if rows > 0 {
					prev := w.prevItem()
					m.drawLess(r, opts, w, prev)
				} else {
					m.draw(r, m.unfocusLine(opts[idx]))
					if idx > 0 {
						idx--
						r.Up(1)
					} else {
						idx = len(opts) - 1
						r.Down(len(opts) - 1)
					}
					m.draw(r, m.focusLine(opts[idx]))
				}

			case console.KeyDown, console.KeyRight:
				if rows > 0 {
					prev := w.next()
					m.drawLess(r, opts, w, prev)
				} else {
					m.draw(r, m.unfocusLine(opts[idx]))
					if idx < len(opts)-1 {
						idx++
						r.Down(1)
					} else {
						idx = 0
						r.Up(len(opts) - 1)
					}
					m.draw(r, m.focusLine(opts[idx]))
				}

			case console.KeyPageDown:
				if rows > 0 {
					prev := w.pageDown()
					m.drawLess(r, opts, w, prev)
				}

			case console.KeyPageUp:
				if rows > 0 {
					prev := w.pageUp()
					m.drawLess(r, opts, w, prev)
				}

			case console.KeyRune:
				if k.Rune != ' ' {
					break
				}
				cur := idx
				if rows > 0 {
					cur = w.focus
				}
				opts[cur].toggle()
				m.draw(r, m.focusLine(opts[cur]))

			case console.KeyEnter:
				if rows > 0 {
					idx = w.focus
					m.paintSubmitLess(r, opts, w)
				} else {
					m.paintSubmit(r, opts, idx)
				}
				for _, o := range opts {
					if o.active {
						result = append(result, o.Value)
					}
				}
				return r.Flush()

			case console.KeyCtrlC, console.KeyCtrlD:
				if rows > 0 {
					m.paintCancelLess(r, opts, w)
				} else {
					m.paintCancel(r, opts, idx)
				}
				if err := r.Flush(); err != nil {
					return err
				}
				if m.onCancel != nil {
					m.onCancel()
				}
				return ErrCancelled
			}

			if err := r.Flush(); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *MultiSelect[T]) focusLine(o Option[T]) string {
	th := m.theme
	var line string
	if o.active {
		label := truncLabel(m.term, th.Glyphs.CheckboxSelected, o.Label, hintReserve(o.Hint))
		line = th.Green(th.Glyphs.CheckboxSelected) + " " + label
	} else {
		label := truncLabel(m.term, th.Glyphs.CheckboxActive, o.Label, hintReserve(o.Hint))
		line = th.Cyan(th.Glyphs.CheckboxActive) + " " + label
	}
	if o.Hint != "" {
		line += " " + th.Dim("("+o.Hint+")")
	}
	return line
}

func (m *MultiSelect[T]) unfocusLine(o Option[T]) string {
	th := m.theme
	if o.active {
		label := truncLabel(m.term, th.Glyphs.CheckboxSelected, o.Label, 0)
		return th.Green(th.Glyphs.CheckboxSelected) + " " + th.Dim(label)
	}
	label := truncLabel(m.term, th.Glyphs.CheckboxInactive, o.Label, 0)
	return th.Dim(th.Glyphs.CheckboxInactive) + " " + th.Dim(label)
}

func (m *MultiSelect[T]) draw(r *console.Renderer, line string) {
	r.PaintLine(m.theme.Cyan(m.theme.Glyphs.Bar) + "  " + line)
}

func (m *MultiSelect[T]) drawLess(r *console.Renderer, opts []Option[T], w *window, prevOffset int) {
	th := m.theme
	r.PrevLine(prevOffset)
	r.Column(0)

	for i := 0; i < w.rows; i++ {
		opt := opts[w.start()+i]
		r.ClearLine()
		r.Println(th.Cyan(th.Glyphs.Bar) + "  " + m.unfocusLine(opt))
	}

	r.ClearLine()
	r.Println(th.Cyan(th.Glyphs.Bar) + "  " + progressLine(w.focus, len(opts)))

	r.PrevLine(w.rows + 1)
	r.NextLine(w.offset)
	m.draw(r, m.focusLine(opts[w.focus]))
}

func (m *MultiSelect[T]) paintInit(r *console.Renderer, opts []Option[T]) {
	th := m.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + m.message)
	for _, opt := range opts {
		r.Println(th.Cyan(th.Glyphs.Bar) + "  " + m.unfocusLine(opt))
	}
	r.Print(th.Cyan(th.Glyphs.BarEnd))

	r.PrevLine(len(opts))
	m.draw(r, m.focusLine(opts[0]))
}

func (m *MultiSelect[T]) paintInitLess(r *console.Renderer, opts []Option[T], w *window) {
	th := m.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + m.message)

	m.drawLess(r, opts, w, 0)

	r.NextLine(w.rows)
	r.Println("")
	r.Print(th.Cyan(th.Glyphs.BarEnd))

	r.PrevLine(w.rows + 1)
	m.draw(r, m.focusLine(opts[0]))
}

// answerLine joins the checked labels, or "none" when nothing is checked.
func (m *MultiSelect[T]) answerLine(opts []Option[T]) string {
	var labels []string
	for _, o := range opts {
		if o.active {
			labels = append(labels, o.Label)
		}
	}
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

func (m *MultiSelect[T]) paintSubmit(r *console.Renderer, opts []Option[T], idx int) {
	th := m.theme
	r.PrevLine(idx + 1)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + m.message)

	for range opts {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")

	r.PrevLine(len(opts) + 1)
	r.Println(th.Glyphs.Bar + "  " + th.Dim(m.answerLine(opts)))
}

func (m *MultiSelect[T]) paintSubmitLess(r *console.Renderer, opts []Option[T], w *window) {
	th := m.theme
	r.PrevLine(w.offset)
	r.PrevLine(1)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + m.message)

	for i := 0; i < w.rows; i++ {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")
	r.ClearLine()
	r.Println("")

	r.PrevLine(w.rows + 2)
	r.Println(th.Glyphs.Bar + "  " + th.Dim(m.answerLine(opts)))
}

func (m *MultiSelect[T]) paintCancel(r *console.Renderer, opts []Option[T], idx int) {
	th := m.theme
	r.PrevLine(idx + 1)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + m.message)

	for range opts {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")

	r.PrevLine(len(opts) + 1)
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim(m.answerLine(opts)))
}

func (m *MultiSelect[T]) paintCancelLess(r *console.Renderer, opts []Option[T], w *window) {
	th := m.theme
	r.PrevLine(w.offset)
	r.PrevLine(1)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + m.message)

	for i := 0; i < w.rows; i++ {
		r.ClearLine()
		r.Println("")
	}
	r.ClearLine()
	r.Println("")
	r.ClearLine()
	r.Println("")

	r.PrevLine(w.rows + 2)
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim(m.answerLine(opts)))
}
