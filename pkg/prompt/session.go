package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/alantheprice/goclack/pkg/style"
)

// Session framing helpers. These print in cooked mode between prompts, so
// they use plain newlines rather than the raw-mode renderer.

// Intro opens a prompt session with a message on the start bar.
func Intro(message string) {
	writeIntro(os.Stdout, style.Default(), message)
}

// Outro closes a prompt session with a message on the end bar.
func Outro(message string) {
	writeOutro(os.Stdout, style.Default(), message)
}

// Cancel closes a prompt session with the message in red. Meant for OnCancel
// callbacks.
func Cancel(message string) {
	th := style.Default()
	writeOutro(os.Stdout, th, th.Red(message))
}

// Info prints an informational line inside a session.
func Info(message string) {
	writeStep(os.Stdout, style.Default(), stepInfo, message)
}

// Warn prints a warning line inside a session.
func Warn(message string) {
	writeStep(os.Stdout, style.Default(), stepWarn, message)
}

// Error prints an error line inside a session.
func Error(message string) {
	writeStep(os.Stdout, style.Default(), stepErr, message)
}

type stepKind int

const (
	stepInfo stepKind = iota
	stepWarn
	stepErr
)

func writeIntro(w io.Writer, th *style.Theme, message string) {
	if message == "" {
		fmt.Fprintln(w, th.Glyphs.BarStart)
		return
	}
	fmt.Fprintln(w, th.Glyphs.BarStart+"  "+message)
}

func writeOutro(w io.Writer, th *style.Theme, message string) {
	fmt.Fprintln(w, th.Glyphs.Bar)
	if message == "" {
		fmt.Fprintln(w, th.Glyphs.BarEnd)
	} else {
		fmt.Fprintln(w, th.Glyphs.BarEnd+"  "+message)
	}
	fmt.Fprintln(w)
}

func writeStep(w io.Writer, th *style.Theme, kind stepKind, message string) {
	fmt.Fprintln(w, th.Glyphs.Bar)

	var marker string
	switch kind {
	case stepInfo:
		marker = th.Cyan(th.Glyphs.StepSubmit)
	case stepWarn:
		marker = th.Yellow(th.Glyphs.StepError)
	case stepErr:
		marker = th.Red(th.Glyphs.StepCancel)
	}
	if message == "" {
		fmt.Fprintln(w, marker)
		return
	}
	fmt.Fprintln(w, marker+"  "+message)
}
