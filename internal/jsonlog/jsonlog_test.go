package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var entries []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.PrintInfo("starting server", map[string]string{"addr": ":4000"})
	l.PrintError(errors.New("connection refused"), map[string]string{"component": "s3"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "connection refused", entries[0].Message)
	assert.Equal(t, map[string]string{"component": "s3"}, entries[0].Properties)
	assert.NotEmpty(t, entries[0].Trace)
}

func TestLoggerInfoHasNoTrace(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo).PrintInfo("database connection pool established", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Empty(t, entries[0].Trace)
	assert.Nil(t, entries[0].Properties)
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelOff)
	l.PrintError(errors.New("ignored"), nil)
	assert.Zero(t, buf.Len())
}

func TestPrintFatalExits(t *testing.T) {
	var buf bytes.Buffer
	var code int
	l := New(&buf, LevelInfo)
	l.exit = func(c int) { code = c }
	l.PrintFatal(errors.New("boom"), nil)

	assert.Equal(t, 1, code)
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "FATAL", entries[0].Level)
}

func TestWriteLogsError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	_, err := l.Write([]byte("http: TLS handshake error\n"))
	require.NoError(t, err)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "http: TLS handshake error", entries[0].Message)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("Error")
	require.NoError(t, err)
	assert.Equal(t, LevelError, level)

	_, err = ParseLevel("debug")
	assert.Error(t, err)
}
