package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const spinnerDelay = 100 * time.Millisecond

// Spinner reports one long-running step. On a non-terminal it prints
// only the final status line.
type Spinner struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols Symbols
	s       *spinner.Spinner
	message string
}

// NewSpinner creates a spinner writing to out.
func NewSpinner(out io.Writer, caps TerminalCapabilities) *Spinner {
	return &Spinner{out: out, caps: caps, symbols: SelectSymbols(caps)}
}

// Start begins animating with message as the suffix.
func (sp *Spinner) Start(message string) {
	sp.message = message
	if !sp.caps.IsTTY {
		return
	}
	sp.s = spinner.New(spinner.CharSets[sp.symbols.SpinnerSet], spinnerDelay, spinner.WithWriter(sp.out))
	sp.s.Suffix = " " + sp.fit(message, 2)
	sp.s.Start()
}

// Success stops the spinner and prints a checkmark line.
func (sp *Spinner) Success(detail string) {
	sp.finish(sp.symbols.Checkmark, color.FgGreen, detail)
}

// Fail stops the spinner and prints a failure line.
func (sp *Spinner) Fail(detail string) {
	sp.finish(sp.symbols.Failure, color.FgRed, detail)
}

// fit clips s so that it and reserved leading columns stay on one terminal
// line. A redraw of a wrapped line leaves stale rows behind.
func (sp *Spinner) fit(s string, reserved int) string {
	room := sp.caps.Width - reserved
	r := []rune(s)
	if sp.caps.Width <= 0 || len(r) <= room {
		return s
	}
	if room <= 3 {
		return string(r[:max(room, 0)])
	}
	return string(r[:room-3]) + "..."
}

func (sp *Spinner) finish(symbol string, attr color.Attribute, detail string) {
	if sp.s != nil {
		sp.s.Stop()
		sp.s = nil
	}
	line := sp.message
	if detail != "" {
		line = fmt.Sprintf("%s (%s)", sp.message, detail)
	}
	line = sp.fit(line, len([]rune(symbol))+1)
	if sp.caps.SupportsColor {
		c := color.New(attr)
		c.EnableColor()
		symbol = c.Sprint(symbol)
	}
	fmt.Fprintf(sp.out, "%s %s\n", symbol, line)
}
