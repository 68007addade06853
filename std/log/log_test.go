package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "perf" }

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		parsed, err := ParseLevel(l.String())
		require.NoError(t, err)
		require.Equal(t, l, parsed)
	}

	_, err := ParseLevel("LOUD")
	require.Error(t, err)
	require.Equal(t, "UNKNOWN", Level(3).String())
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf)

	l.Debug(nil, "hidden")
	require.Empty(t, buf.String())

	l.Info(testTag{}, "shown", "threads", 4)
	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "tag=perf")
	require.Contains(t, buf.String(), "threads=4")

	require.Equal(t, LevelInfo, l.SetLevel(LevelTrace))
	buf.Reset()
	l.Trace("raw-tag", "now shown")
	require.Contains(t, buf.String(), "level=TRACE")
	require.Contains(t, buf.String(), "tag=raw-tag")
}

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	l, err := Open(&buf, "json", "WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, l.Level())

	l.Info(nil, "hidden")
	l.Warn(nil, "shown")
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.NotContains(t, buf.String(), "hidden")

	_, err = Open(&buf, "xml", "INFO")
	require.Error(t, err)
	_, err = Open(&buf, "text", "nope")
	require.Error(t, err)
}

func TestFatalExits(t *testing.T) {
	var code int
	saved := exit
	exit = func(c int) { code = c }
	defer func() { exit = saved }()

	var buf bytes.Buffer
	prev := SetDefault(NewText(&buf))
	defer SetDefault(prev)

	Fatal(nil, "boom")
	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "level=FATAL")
}
