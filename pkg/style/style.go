// Package style supplies the prompt glyph set and terminal text styling.
//
// The glyph table and color support are probed once and carried in a Theme
// value that gets injected into every prompt, so there is no hidden global
// state to reset between interactions.
package style

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Styler renders SGR-styled text. With colors disabled every method returns
// its input unchanged, which keeps scripted test output byte-stable.
type Styler struct {
	au aurora.Aurora
}

// NewStyler creates a styler, with or without color output.
func NewStyler(colors bool) *Styler {
	return &Styler{au: aurora.NewAurora(colors)}
}

func (s *Styler) Dim(v string) string     { return s.au.Faint(v).String() }
func (s *Styler) Bold(v string) string    { return s.au.Bold(v).String() }
func (s *Styler) Italic(v string) string  { return s.au.Italic(v).String() }
func (s *Styler) Reverse(v string) string { return s.au.Reverse(v).String() }
func (s *Styler) Strike(v string) string  { return s.au.CrossedOut(v).String() }

func (s *Styler) Cyan(v string) string   { return s.au.Cyan(v).String() }
func (s *Styler) Green(v string) string  { return s.au.Green(v).String() }
func (s *Styler) Yellow(v string) string { return s.au.Yellow(v).String() }
func (s *Styler) Red(v string) string    { return s.au.Red(v).String() }

// StrikeDim combines strikethrough and faint in a single SGR run, used for
// the cancelled-answer line.
func (s *Styler) StrikeDim(v string) string {
	return s.au.Colorize(v, aurora.CrossedOutFm|aurora.FaintFm).String()
}

// Theme bundles the glyph set with the styling capability.
type Theme struct {
	Glyphs Glyphs
	*Styler
}

// Default probes the terminal once: unicode glyphs where supported, colors
// when stdout is a TTY.
func Default() *Theme {
	colors := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return &Theme{
		Glyphs: DetectGlyphs(),
		Styler: NewStyler(colors),
	}
}

// Plain is a colorless unicode theme, useful for piped output and tests.
func Plain() *Theme {
	return &Theme{
		Glyphs: GlyphsFor(true),
		Styler: NewStyler(false),
	}
}
