package style

import (
	"os"
	"runtime"
)

// UnicodeSupported reports whether the terminal can be expected to render
// unicode glyphs. Outside Windows everything except the linux console
// qualifies; on Windows only a known set of modern terminals does.
func UnicodeSupported() bool {
	if runtime.GOOS != "windows" {
		return os.Getenv("TERM") != "linux"
	}

	switch {
	case os.Getenv("CI") != "",
		os.Getenv("WT_SESSION") != "", // Windows Terminal
		os.Getenv("TERMINUS_SUBLIME") != "",
		os.Getenv("ConEmuTask") == "{cmd::Cmder}",
		os.Getenv("TERM_PROGRAM") == "Terminus-Sublime",
		os.Getenv("TERM_PROGRAM") == "vscode",
		os.Getenv("TERM") == "xterm-256color",
		os.Getenv("TERM") == "alacritty",
		os.Getenv("TERMINAL_EMULATOR") == "JetBrains-JediTerm":
		return true
	}
	return false
}
