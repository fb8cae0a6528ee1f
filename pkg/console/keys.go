package console

import (
	"bufio"
	"unicode/utf8"
)

// KeyKind identifies a decoded keyboard event.
type KeyKind int

const (
	// KeyRune is a printable character; the rune is in Key.Rune.
	KeyRune KeyKind = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
	KeyCtrlD
)

// Key is one keyboard event read from the terminal in raw mode.
type Key struct {
	Kind KeyKind
	Rune rune
}

// readKey decodes the next key event from a raw byte stream.
func readKey(in *bufio.Reader) (Key, error) {
	b, err := in.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	case 0x04:
		return Key{Kind: KeyCtrlD}, nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case '\t':
		return Key{Kind: KeyTab}, nil
	case 0x08, 0x7f:
		return Key{Kind: KeyBackspace}, nil
	case 0x1b:
		return readEscape(in)
	}

	if b >= utf8.RuneSelf {
		buf := []byte{b}
		for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
			nb, err := in.ReadByte()
			if err != nil {
				break
			}
			buf = append(buf, nb)
		}
		r, _ := utf8.DecodeRune(buf)
		return Key{Kind: KeyRune, Rune: r}, nil
	}

	return Key{Kind: KeyRune, Rune: rune(b)}, nil
}

// readEscape decodes the tail of an escape sequence. A terminal delivers the
// whole sequence in one burst, so an empty read buffer after ESC means the
// user pressed the escape key itself.
func readEscape(in *bufio.Reader) (Key, error) {
	if in.Buffered() == 0 {
		return Key{Kind: KeyEsc}, nil
	}

	b, err := in.ReadByte()
	if err != nil {
		return Key{Kind: KeyEsc}, nil
	}

	switch b {
	case '[':
		return readCSI(in)
	case 'O':
		// application cursor mode uses SS3 finals
		fb, err := in.ReadByte()
		if err != nil {
			return Key{Kind: KeyEsc}, nil
		}
		return finalKey(fb), nil
	}

	// alt+key; deliver the underlying key
	return Key{Kind: KeyRune, Rune: rune(b)}, nil
}

func readCSI(in *bufio.Reader) (Key, error) {
	b, err := in.ReadByte()
	if err != nil {
		return Key{Kind: KeyEsc}, nil
	}

	if b >= '0' && b <= '9' {
		// numeric sequences such as [3~ (delete) or [5~ (page up)
		num := b
		for {
			nb, err := in.ReadByte()
			if err != nil || nb == '~' {
				break
			}
			num = nb
		}
		switch num {
		case '1', '7':
			return Key{Kind: KeyHome}, nil
		case '3':
			return Key{Kind: KeyDelete}, nil
		case '4', '8':
			return Key{Kind: KeyEnd}, nil
		case '5':
			return Key{Kind: KeyPageUp}, nil
		case '6':
			return Key{Kind: KeyPageDown}, nil
		}
		return Key{Kind: KeyEsc}, nil
	}

	return finalKey(b), nil
}

func finalKey(b byte) Key {
	switch b {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	case 'C':
		return Key{Kind: KeyRight}
	case 'D':
		return Key{Kind: KeyLeft}
	case 'H':
		return Key{Kind: KeyHome}
	case 'F':
		return Key{Kind: KeyEnd}
	}
	return Key{Kind: KeyEsc}
}
