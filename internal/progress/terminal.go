// Package progress shows a spinner on stderr while long git reads run.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the output terminal can render.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// Symbols are the status glyphs and spinner charset for a terminal.
type Symbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// DetectTerminalCapabilities inspects f (normally os.Stderr) and the
// NO_COLOR and CHGLOG_UAE_ASCII environment variables.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	fd := int(f.Fd())
	isTTY := term.IsTerminal(fd)

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && os.Getenv("NO_COLOR") == "",
		SupportsUnicode: isTTY && os.Getenv("CHGLOG_UAE_ASCII") != "1",
		Width:           width,
	}
}

// SelectSymbols returns Unicode glyphs with the braille spinner (set 14),
// or ASCII glyphs with the |/-\ spinner (set 9).
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14}
	}
	return Symbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9}
}
