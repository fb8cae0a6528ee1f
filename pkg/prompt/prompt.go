// Package prompt implements interactive clack-style terminal prompts: text
// input, confirm, single- and multi-select and multi-line input. Each prompt
// is configured through a builder, painted with cursor-relative repaints and
// driven by a blocking raw-keyboard loop.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alantheprice/goclack/pkg/console"
	"github.com/alantheprice/goclack/pkg/style"
	"github.com/mattn/go-runewidth"
)

func defaultTerminal(t *console.Terminal) *console.Terminal {
	if t != nil {
		return t
	}
	return console.New()
}

func defaultTheme(th *style.Theme) *style.Theme {
	if th != nil {
		return th
	}
	return style.Default()
}

// readKey maps read failures: end of input cancels, everything else is a
// fatal terminal error.
func readKey(t *console.Terminal) (console.Key, error) {
	k, err := t.ReadKey()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return console.Key{Kind: console.KeyCtrlD}, nil
		}
		return k, fmt.Errorf("read key: %w", err)
	}
	return k, nil
}

// truncLabel fits a label to the terminal width, reserving room for the
// prompt chrome (bar, two spaces, marker glyph, space) plus any extra, e.g.
// a focused hint. Unknown width leaves the label untouched.
func truncLabel(t *console.Terminal, marker, label string, extra int) string {
	width, _, err := t.Size()
	if err != nil || width <= 0 {
		return label
	}
	max := width - 4 - runewidth.StringWidth(marker) - extra
	if max <= 0 {
		return label
	}
	return runewidth.Truncate(label, max, "")
}

func hintReserve(hint string) int {
	if hint == "" {
		return 0
	}
	return runewidth.StringWidth(hint) + 3
}

// progressLine renders the paging indicator, current position zero-padded to
// the width of the total: "......... (04/12)".
func progressLine(focus, total int) string {
	digits := len(strconv.Itoa(total))
	return fmt.Sprintf("......... (%0*d/%d)", digits, focus+1, total)
}
