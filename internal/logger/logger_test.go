package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		input string
		want  zerolog.Level
	}{
		"debug":        {input: "debug", want: zerolog.DebugLevel},
		"upper info":   {input: "INFO", want: zerolog.InfoLevel},
		"warning":      {input: "warning", want: zerolog.WarnLevel},
		"off":          {input: "off", want: zerolog.Disabled},
		"unknown":      {input: "chatty", want: zerolog.WarnLevel},
		"empty":        {input: "", want: zerolog.WarnLevel},
		"padded error": {input: " error ", want: zerolog.ErrorLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := Named(New(Options{Level: "info", Format: "json", Writer: &buf}), "writer")

	l.Debug().Msg("hidden")
	l.Info().Str("version", "1.0.0").Msg("finalized release")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "finalized release", line["message"])
	assert.Equal(t, "writer", line["component"])
	assert.Equal(t, "1.0.0", line["version"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Writer: &buf})
	l.Warn().Msg("skipping malformed release record")
	assert.Contains(t, buf.String(), "skipping malformed release record")
}
