package prompt

import (
	"errors"
	"fmt"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
	"github.com/mattn/go-runewidth"
)

// MultiInput asks the user for several lines of text, one edit row at a time.
// Submitted lines stack up inside the frame; an empty submit finishes once
// the minimum is met.
type MultiInput struct {
	message     string
	initial     string
	placeholder string
	validate    func(string) error
	onCancel    func()
	min         int
	max         int

	term  *console.Terminal
	theme *style.Theme
}

// NewMultiInput creates a multi-line input prompt with the given message.
func NewMultiInput(message string) *MultiInput {
	return &MultiInput{message: message, min: 1}
}

// InitialValue seeds each edit row with text the user can edit or erase.
func (m *MultiInput) InitialValue(s string) *MultiInput {
	m.initial = s
	return m
}

// Placeholder sets dimmed text shown while the edit row is empty.
func (m *MultiInput) Placeholder(s string) *MultiInput {
	m.placeholder = s
	return m
}

// Min sets the minimum number of answers. Default 1.
func (m *MultiInput) Min(n int) *MultiInput {
	m.min = n
	return m
}

// Max sets the maximum number of answers; the prompt submits automatically
// when it is reached. Zero means unlimited.
func (m *MultiInput) Max(n int) *MultiInput {
	m.max = n
	return m
}

// Validate sets a check run against every non-empty submit.
func (m *MultiInput) Validate(fn func(string) error) *MultiInput {
	m.validate = fn
	return m
}

// OnCancel sets a callback run after the prompt is cancelled.
func (m *MultiInput) OnCancel(fn func()) *MultiInput {
	m.onCancel = fn
	return m
}

// WithTerminal overrides the terminal, mainly for scripted tests.
func (m *MultiInput) WithTerminal(t *console.Terminal) *MultiInput {
	m.term = t
	return m
}

// WithTheme overrides the glyph/style theme.
func (m *MultiInput) WithTheme(th *style.Theme) *MultiInput {
	m.theme = th
	return m
}

// Interact paints the prompt and collects lines until an empty submit (with
// the minimum met), the maximum, or a cancel.
func (m *MultiInput) Interact() ([]string, error) {
	return m.run(nil)
}

// ParseMulti runs the prompt and converts every line with fn, re-prompting
// on conversion errors.
func ParseMulti[T any](m *MultiInput, fn func(string) (T, error)) ([]T, error) {
	var results []T
	_, err := m.run(func(s string) error {
		v, err := fn(s)
		if err != nil {
			return err
		}
		results = append(results, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (m *MultiInput) run(convert func(string) error) ([]string, error) {
	m.term = defaultTerminal(m.term)
	m.theme = defaultTheme(m.theme)
	th := m.theme

	r := console.NewRenderer(m.term)
	var values []string
	err := m.term.Raw(false, func() error {
		m.paintInit(r)
		if err := r.Flush(); err != nil {
			return err
		}

		barWidth := runewidth.StringWidth(th.Glyphs.Bar) + 2
		for {
			amt := len(values)
			enforce := amt < m.min

			initial := m.initial
			failed := false
		edit:
			for {
				bar := th.Cyan(th.Glyphs.Bar)
				if failed {
					bar = th.Yellow(th.Glyphs.Bar)
				}
				e := newEditor(m.term, r, th, bar+"  ", barWidth, m.placeholder)

				line, err := e.readLine(initial)
				if errors.Is(err, ErrCancelled) {
					m.paintCancel(r, amt)
					if err := r.Flush(); err != nil {
						return err
					}
					if m.onCancel != nil {
						m.onCancel()
					}
					return ErrCancelled
				}
				if err != nil {
					return err
				}

				if line == "" {
					if enforce {
						initial = ""
						failed = true
						m.paintVal(r, fmt.Sprintf("minimum %d", m.min), amt)
						if err := r.Flush(); err != nil {
							return err
						}
						continue
					}
					m.paintOut(r, values)
					return r.Flush()
				}

				if m.validate != nil {
					if verr := m.validate(line); verr != nil {
						initial = line
						failed = true
						m.paintVal(r, verr.Error(), amt)
						if err := r.Flush(); err != nil {
							return err
						}
						continue
					}
				}
				if convert != nil {
					if cerr := convert(line); cerr != nil {
						initial = line
						failed = true
						m.paintVal(r, cerr.Error(), amt)
						if err := r.Flush(); err != nil {
							return err
						}
						continue
					}
				}

				m.paintLine(r, line, amt)
				values = append(values, line)

				if m.max > 0 && len(values) == m.max {
					r.Println("")
					m.paintOut(r, values)
					return r.Flush()
				}
				if err := r.Flush(); err != nil {
					return err
				}
				break edit
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (m *MultiInput) paintInit(r *console.Renderer) {
	th := m.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + m.message)
	r.Println(th.Cyan(th.Glyphs.Bar))
	r.Print(th.Cyan(th.Glyphs.BarEnd))
	r.PrevLine(1)
}

// paintLine folds the accepted value into the frame and opens a fresh edit
// row under it.
func (m *MultiInput) paintLine(r *console.Renderer, value string, amt int) {
	th := m.theme
	r.PrevLine(amt + 2)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + m.message)
	for i := 0; i < amt; i++ {
		r.Println(th.Cyan(th.Glyphs.Bar))
	}
	r.Println(th.Cyan(th.Glyphs.Bar) + "  " + th.Dim(value))
	r.Println(th.Cyan(th.Glyphs.Bar))
	r.ClearLine()
	r.Print(th.Cyan(th.Glyphs.BarEnd))
	r.PrevLine(1)
}

func (m *MultiInput) paintVal(r *console.Renderer, text string, amt int) {
	th := m.theme
	r.PrevLine(amt + 2)
	r.Println(th.Yellow(th.Glyphs.StepError) + "  " + m.message)
	for i := 0; i <= amt; i++ {
		r.Println(th.Yellow(th.Glyphs.Bar))
	}
	r.ClearLine()
	r.Print(th.Yellow(th.Glyphs.BarEnd) + "  " + th.Yellow(text))
	r.PrevLine(1)
}

func (m *MultiInput) paintOut(r *console.Renderer, values []string) {
	th := m.theme
	amt := len(values)
	r.PrevLine(amt + 2)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + m.message)

	if amt == 0 {
		r.Println(th.Glyphs.Bar)
	}
	for _, v := range values {
		r.Println(th.Glyphs.Bar + "  " + th.Dim(v))
	}

	r.ClearLine()
	r.Println("")
	r.ClearLine()
	r.Println("")
	r.PrevLine(2)
}

func (m *MultiInput) paintCancel(r *console.Renderer, amt int) {
	th := m.theme
	r.PrevLine(1)
	r.ClearLine()
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim("cancelled"))
	r.ClearLine()

	r.PrevLine(amt + 2)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + m.message)
	for i := 0; i < amt; i++ {
		r.Println(th.Glyphs.Bar)
	}
	r.NextLine(1)
}
