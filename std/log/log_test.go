package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "test-tag" }

func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		got, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		require.Equal(t, lvl, got)
	}

	got, err := ParseLevel(" debug ")
	require.NoError(t, err)
	require.Equal(t, LevelDebug, got)

	got, err = ParseLevel("warning")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, got)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
	require.Equal(t, "UNKNOWN", Level(3).String())
}

func TestLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewText(buf)
	require.Equal(t, LevelInfo, l.Level())

	l.Debug(nil, "hidden")
	require.Empty(t, buf.String())

	l.Info(testTag{}, "shown", "key", 42)
	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "tag=test-tag")
	require.Contains(t, out, "key=42")

	prev := l.SetLevel(LevelTrace)
	require.Equal(t, LevelInfo, prev)
	require.True(t, l.Enabled(LevelTrace))

	buf.Reset()
	l.Trace("plain", "traced")
	require.Contains(t, buf.String(), "level=TRACE")
	require.Contains(t, buf.String(), "tag=plain")
}

func TestLoggerFatalExits(t *testing.T) {
	code := -1
	orig := exit
	exit = func(c int) { code = c }
	defer func() { exit = orig }()

	buf := &bytes.Buffer{}
	l := NewJson(buf)
	l.Fatal(nil, "boom")
	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), `"level":"FATAL"`)
}

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetDefault(NewText(buf))
	defer SetDefault(prev)

	require.False(t, HasTrace())
	Warn(nil, "careful")
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "msg=careful")
}
