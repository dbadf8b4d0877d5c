package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps TerminalCapabilities
		want Symbols
	}{
		"unicode": {
			caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			want: Symbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14},
		},
		"ascii": {
			caps: TerminalCapabilities{},
			want: Symbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectSymbols(tt.caps))
		})
	}
}

func TestSpinner_NonTTYPrintsStatusOnly(t *testing.T) {
	var out bytes.Buffer
	sp := NewSpinner(&out, TerminalCapabilities{})

	sp.Start("reading history")
	sp.Success("12 commits")

	assert.Equal(t, "[OK] reading history (12 commits)\n", out.String())
}

func TestSpinner_Fail(t *testing.T) {
	var out bytes.Buffer
	sp := NewSpinner(&out, TerminalCapabilities{})

	sp.Start("reading tags")
	sp.Fail("")

	assert.Equal(t, "[FAIL] reading tags\n", out.String())
}

func TestSpinner_ClipsToWidth(t *testing.T) {
	tests := map[string]struct {
		width int
		want  string
	}{
		"unknown width": {width: 0, want: "[OK] reading history (12 commits)\n"},
		"wide enough":   {width: 80, want: "[OK] reading history (12 commits)\n"},
		"narrow":        {width: 20, want: "[OK] reading hist...\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			sp := NewSpinner(&out, TerminalCapabilities{Width: tt.width})

			sp.Start("reading history")
			sp.Success("12 commits")

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSpinner_ColorsStatus(t *testing.T) {
	var plain, colored bytes.Buffer

	NewSpinner(&plain, TerminalCapabilities{}).Fail("")
	NewSpinner(&colored, TerminalCapabilities{SupportsColor: true}).Fail("")

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[31m[FAIL]")
}
