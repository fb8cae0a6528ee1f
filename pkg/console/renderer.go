package console

import "fmt"

// Renderer repaints individual terminal lines in place using cursor-relative
// motions; it never clears the screen or repaints lines it was not asked to.
//
// Write errors are sticky: after the first failure every call becomes a
// no-op and Flush reports the original error. There is no rollback of a
// partially painted frame.
type Renderer struct {
	t   *Terminal
	err error
}

// NewRenderer returns a renderer painting through the given terminal.
func NewRenderer(t *Terminal) *Renderer {
	return &Renderer{t: t}
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := r.t.out.WriteString(s); err != nil {
		r.err = fmt.Errorf("terminal write: %w", err)
	}
}

// Print writes content at the current cursor position.
func (r *Renderer) Print(s string) { r.write(s) }

// Println writes content and moves to column 0 of the next line. Raw mode
// does not translate newlines, so the carriage return is explicit.
func (r *Renderer) Println(s string) { r.write(s + "\r\n") }

// PaintLine repaints the current line: column 0, clear, content. The cursor
// does not move vertically.
func (r *Renderer) PaintLine(content string) {
	r.write("\r" + clearLineSeq() + content)
}

// MoveRelative moves the cursor delta lines down (negative is up); 0 is a
// no-op.
func (r *Renderer) MoveRelative(delta int) {
	switch {
	case delta < 0:
		r.Up(-delta)
	case delta > 0:
		r.Down(delta)
	}
}

// Up moves the cursor n lines up without changing the column.
func (r *Renderer) Up(n int) {
	if n > 0 {
		r.write(cursorUpSeq(n))
	}
}

// Down moves the cursor n lines down without changing the column.
func (r *Renderer) Down(n int) {
	if n > 0 {
		r.write(cursorDownSeq(n))
	}
}

// PrevLine moves to column 0, n lines up.
func (r *Renderer) PrevLine(n int) {
	if n > 0 {
		r.write(prevLineSeq(n))
	}
}

// NextLine moves to column 0, n lines down.
func (r *Renderer) NextLine(n int) {
	if n > 0 {
		r.write(nextLineSeq(n))
	}
}

// Column moves the cursor to a 0-based column on the current line.
func (r *Renderer) Column(col int) {
	r.write(columnSeq(col))
}

// ClearLine erases the current line without moving the cursor.
func (r *Renderer) ClearLine() {
	r.write(clearLineSeq())
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Flush pushes buffered output to the terminal and reports the first error
// seen by either the renderer or the writer.
func (r *Renderer) Flush() error {
	if err := r.t.Flush(); err != nil && r.err == nil {
		r.err = fmt.Errorf("terminal flush: %w", err)
	}
	return r.err
}
