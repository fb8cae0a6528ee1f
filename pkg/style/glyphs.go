package style

// Glyphs is the fixed set of prompt decoration characters. Terminals without
// unicode support get the ASCII-safe variant.
type Glyphs struct {
	Bar      string
	BarStart string
	BarEnd   string

	StepActive string
	StepCancel string
	StepError  string
	StepSubmit string

	RadioActive   string
	RadioInactive string

	CheckboxActive   string
	CheckboxSelected string
	CheckboxInactive string
}

var unicodeGlyphs = Glyphs{
	Bar:              "│",
	BarStart:         "┌",
	BarEnd:           "└",
	StepActive:       "◆",
	StepCancel:       "■",
	StepError:        "▲",
	StepSubmit:       "◇",
	RadioActive:      "●",
	RadioInactive:    "○",
	CheckboxActive:   "◻",
	CheckboxSelected: "◼",
	CheckboxInactive: "◻",
}

var asciiGlyphs = Glyphs{
	Bar:              "|",
	BarStart:         "T",
	BarEnd:           "—",
	StepActive:       "*",
	StepCancel:       "x",
	StepError:        "x",
	StepSubmit:       "o",
	RadioActive:      ">",
	RadioInactive:    " ",
	CheckboxActive:   "[.]",
	CheckboxSelected: "[+]",
	CheckboxInactive: "[ ]",
}

// GlyphsFor returns the unicode or ASCII glyph set.
func GlyphsFor(unicode bool) Glyphs {
	if unicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

// DetectGlyphs picks the glyph set matching the current terminal.
func DetectGlyphs() Glyphs {
	return GlyphsFor(UnicodeSupported())
}
