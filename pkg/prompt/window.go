package prompt

// window is the paged-list engine: it tracks the focused logical index and
// the row of the visible window that holds it. The visible slice is always
// [focus-offset, focus-offset+rows).
//
// Every transition returns the offset of the frame being replaced, which the
// repaint needs to locate the previous frame's focus row before moving.
type window struct {
	total  int
	rows   int
	focus  int
	offset int
}

func newWindow(total, rows int) *window {
	return &window{total: total, rows: rows}
}

// start is the logical index of the window's first visible row.
func (w *window) start() int {
	return w.focus - w.offset
}

// next moves focus one item down, wrapping to the first item.
func (w *window) next() (prev int) {
	prev = w.offset
	if w.focus < w.total-1 {
		w.focus++
		if w.offset < w.rows-1 {
			w.offset++
		}
	} else {
		w.focus = 0
		w.offset = 0
	}
	return prev
}

// prevItem moves focus one item up, wrapping to the last item with the
// window pinned to its bottom row.
func (w *window) prevItem() (prev int) {
	prev = w.offset
	if w.focus > 0 {
		w.focus--
		if w.offset > 0 {
			w.offset--
		}
	} else {
		w.focus = w.total - 1
		w.offset = w.rows - 1
	}
	return prev
}

// pageDown jumps a full window forward, clamped to the last item. When the
// jump overruns the end the window is pulled back so the final item sits on
// the last visible row.
func (w *window) pageDown() (prev int) {
	prev = w.offset
	if w.focus+w.rows >= w.total-1 {
		w.focus = w.total - 1
		w.offset = w.rows - 1
	} else {
		w.focus += w.rows
		if w.total-w.focus < w.rows-w.offset {
			w.offset = w.rows - (w.total - w.focus)
		}
	}
	return prev
}

// pageUp jumps a full window backward, clamped to the first item.
func (w *window) pageUp() (prev int) {
	prev = w.offset
	if w.focus <= w.rows {
		w.focus = 0
		w.offset = 0
	} else {
		w.focus -= w.rows
		if w.offset > w.focus {
			w.offset = w.focus
		}
	}
	return prev
}

// lessRows decides the visible row budget for a list of count options.
// An explicit amount wins; otherwise the budget is derived from the terminal
// height minus the 4-row prompt chrome, optionally capped by max. A zero
// return means paging stays off.
func lessRows(count, amount, max int, size func() (int, int, error)) int {
	if amount > 0 {
		if count > amount {
			return amount
		}
		return 0
	}

	_, rows, err := size()
	if err != nil {
		return 0
	}
	rows -= 4
	if max > 0 && rows > max {
		rows = max
	}
	if rows > 0 && count > rows {
		return rows
	}
	return 0
}
