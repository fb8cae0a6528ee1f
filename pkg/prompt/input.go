package prompt

import (
	"errors"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
	"github.com/mattn/go-runewidth"
)

// Input asks the user for a single line of text.
//
//	name, err := prompt.NewInput("What's your name?").
//		Placeholder("anonymous").
//		Interact()
//
// Interact allows an empty submit; Required and Parse re-prompt until the
// line is non-empty and passes every check.
type Input struct {
	message     string
	initial     string
	placeholder string
	def         string
	validate    func(string) error
	onCancel    func()

	term  *console.Terminal
	theme *style.Theme
}

// NewInput creates a text input prompt with the given message.
func NewInput(message string) *Input {
	return &Input{message: message}
}

// InitialValue seeds the editor with text the user can edit or erase.
func (i *Input) InitialValue(s string) *Input {
	i.initial = s
	return i
}

// Placeholder sets dimmed text shown while the buffer is empty. It is
// display-only and never submitted.
func (i *Input) Placeholder(s string) *Input {
	i.placeholder = s
	return i
}

// Default sets the value an empty submit resolves to.
func (i *Input) Default(s string) *Input {
	i.def = s
	return i
}

// Validate sets a check run against every non-empty submit. A non-nil error
// re-prompts with the error text and the rejected line kept for editing.
func (i *Input) Validate(fn func(string) error) *Input {
	i.validate = fn
	return i
}

// OnCancel sets a callback run after the prompt is cancelled.
func (i *Input) OnCancel(fn func()) *Input {
	i.onCancel = fn
	return i
}

// WithTerminal overrides the terminal, mainly for scripted tests.
func (i *Input) WithTerminal(t *console.Terminal) *Input {
	i.term = t
	return i
}

// WithTheme overrides the glyph/style theme.
func (i *Input) WithTheme(th *style.Theme) *Input {
	i.theme = th
	return i
}

// Interact paints the prompt and blocks until the user submits or cancels.
// An empty submit returns the default value, or "".
func (i *Input) Interact() (string, error) {
	return i.run(false, nil)
}

// Required is Interact with empty submits rejected.
func (i *Input) Required() (string, error) {
	return i.run(true, nil)
}

// Parse runs the prompt and converts the line with fn, re-prompting on
// conversion errors. Empty submits are rejected.
func Parse[T any](i *Input, fn func(string) (T, error)) (T, error) {
	var result T
	_, err := i.run(true, func(s string) error {
		v, err := fn(s)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// MaybeParse is Parse with empty submits allowed; ok reports whether a value
// was submitted.
func MaybeParse[T any](i *Input, fn func(string) (T, error)) (T, bool, error) {
	var result T
	ok := false
	_, err := i.run(false, func(s string) error {
		v, err := fn(s)
		if err != nil {
			return err
		}
		result = v
		ok = true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return result, ok, nil
}

// run drives the edit loop: failed checks repaint the frame in yellow with
// the complaint on the end bar and hand the rejected line back to the editor.
func (i *Input) run(required bool, convert func(string) error) (string, error) {
	i.term = defaultTerminal(i.term)
	i.theme = defaultTheme(i.theme)
	th := i.theme

	r := console.NewRenderer(i.term)
	var result string
	err := i.term.Raw(false, func() error {
		i.paintInit(r)
		if err := r.Flush(); err != nil {
			return err
		}

		barWidth := runewidth.StringWidth(th.Glyphs.Bar) + 2
		initial := i.initial
		failed := false
		for {
			bar := th.Cyan(th.Glyphs.Bar)
			if failed {
				bar = th.Yellow(th.Glyphs.Bar)
			}
			e := newEditor(i.term, r, th, bar+"  ", barWidth, i.placeholder)

			line, err := e.readLine(initial)
			if errors.Is(err, ErrCancelled) {
				i.paintCancel(r)
				if err := r.Flush(); err != nil {
					return err
				}
				if i.onCancel != nil {
					i.onCancel()
				}
				return ErrCancelled
			}
			if err != nil {
				return err
			}

			if line == "" && i.def != "" {
				line = i.def
			}
			if line == "" {
				if !required {
					i.paintSubmit(r, "")
					return r.Flush()
				}
				initial = ""
				failed = true
				i.paintVal(r, "value is required")
				if err := r.Flush(); err != nil {
					return err
				}
				continue
			}

			if i.validate != nil {
				if verr := i.validate(line); verr != nil {
					initial = line
					failed = true
					i.paintVal(r, verr.Error())
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
					i.paintVal(r, cerr.Error())
					if err := r.Flush(); err != nil {
						return err
					}
					continue
				}
			}

			result = line
			i.paintSubmit(r, line)
			return r.Flush()
		}
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func (i *Input) paintInit(r *console.Renderer) {
	th := i.theme
	r.Println(th.Glyphs.Bar)
	r.Println(th.Cyan(th.Glyphs.StepActive) + "  " + i.message)
	r.Println(th.Cyan(th.Glyphs.Bar))
	r.Print(th.Cyan(th.Glyphs.BarEnd))
	r.PrevLine(1)
}

// paintVal rewrites the frame in yellow with the complaint on the end bar,
// leaving the cursor back on the input row for the next edit.
func (i *Input) paintVal(r *console.Renderer, text string) {
	th := i.theme
	r.PrevLine(2)
	r.Println(th.Yellow(th.Glyphs.StepError) + "  " + i.message)
	r.Println(th.Yellow(th.Glyphs.Bar))
	r.ClearLine()
	r.Print(th.Yellow(th.Glyphs.BarEnd) + "  " + th.Yellow(text))
	r.PrevLine(1)
}

func (i *Input) paintSubmit(r *console.Renderer, value string) {
	th := i.theme
	r.PrevLine(2)
	r.Println(th.Green(th.Glyphs.StepSubmit) + "  " + i.message)
	r.ClearLine()
	r.Println(th.Glyphs.Bar + "  " + th.Dim(value))
	r.ClearLine()
}

func (i *Input) paintCancel(r *console.Renderer) {
	th := i.theme
	r.PrevLine(2)
	r.Println(th.Red(th.Glyphs.StepCancel) + "  " + i.message)
	r.ClearLine()
	r.Println(th.Glyphs.Bar + "  " + th.StrikeDim("cancelled"))
	r.ClearLine()
}
