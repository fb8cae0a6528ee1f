package console

import "fmt"

// ANSI escape sequence helpers for consistent terminal control.

func cursorUpSeq(n int) string   { return fmt.Sprintf("\033[%dA", n) }
func cursorDownSeq(n int) string { return fmt.Sprintf("\033[%dB", n) }

// prevLineSeq moves the cursor to column 0, n lines up.
func prevLineSeq(n int) string { return fmt.Sprintf("\033[%dF", n) }

// nextLineSeq moves the cursor to column 0, n lines down.
func nextLineSeq(n int) string { return fmt.Sprintf("\033[%dE", n) }

// columnSeq moves the cursor to a 0-based column (ANSI is 1-based).
func columnSeq(col int) string { return fmt.Sprintf("\033[%dG", col+1) }

func clearLineSeq() string { return "\033[2K" }

func hideCursorSeq() string { return "\033[?25l" }
func showCursorSeq() string { return "\033[?25h" }
