// FILE: msglog/src/internal/msglog/store_test.go
package msglog

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"msglog/src/internal/config"
	"msglog/src/internal/core"
	"msglog/src/internal/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^([IWEF]): (.*) (\d{2}:\d{2}:\d{2})$`)

// fixedClock returns a clock that advances one second per call
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newTestStore() *Store {
	return NewStore(WithClock(fixedClock(time.Date(2022, 9, 12, 13, 45, 0, 0, time.Local))))
}

func lines(t *testing.T, text string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(text, "\n"), "rendered log must end with a newline")
	require.False(t, strings.HasSuffix(text, "\n\n"), "rendered log must end with exactly one newline")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestStore_AppendRender(t *testing.T) {
	t.Run("LastLineMatchesFormat", func(t *testing.T) {
		testCases := []struct {
			severity core.Severity
			text     string
		}{
			{core.Info, "Hello msg 1."},
			{core.Warning, "Boom"},
			{core.Error, "disk full"},
			{core.Fatal, "cannot continue"},
		}

		s := NewStore()
		for _, tc := range testCases {
			require.NoError(t, s.Append(tc.severity, tc.text))

			out, ok := s.Render()
			require.True(t, ok)
			all := lines(t, out)
			m := lineRe.FindStringSubmatch(all[len(all)-1])
			require.NotNil(t, m, "line %q", all[len(all)-1])
			assert.Equal(t, tc.severity.Code(), m[1])
			assert.Equal(t, tc.text, m[2])
		}
	})

	t.Run("ExactOutput", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "Hello msg 1."))
		require.NoError(t, s.Append(core.Warning, "Boom"))

		out, ok := s.Render()
		require.True(t, ok)
		assert.Equal(t, "I: Hello msg 1. 13:45:00\nW: Boom 13:45:01\n", out)
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		s := newTestStore()
		const n = 25
		for i := 0; i < n; i++ {
			require.NoError(t, s.Append(core.Severities[i%len(core.Severities)], "msg "+string(rune('A'+i))))
		}

		out, ok := s.Render()
		require.True(t, ok)
		all := lines(t, out)
		require.Len(t, all, n)
		for i, line := range all {
			m := lineRe.FindStringSubmatch(line)
			require.NotNil(t, m)
			assert.Equal(t, "msg "+string(rune('A'+i)), m[2])
		}
	})

	t.Run("DuplicatesKept", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "same"))
		require.NoError(t, s.Append(core.Info, "same"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("TimestampFixedAtAppend", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "x"))

		first, _ := s.Render()
		second, _ := s.Render()
		assert.Equal(t, first, second)
	})

	t.Run("EmbeddedNewlineIsOneLine", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Error, "first\nsecond\n"))

		out, ok := s.Render()
		require.True(t, ok)
		all := lines(t, out)
		require.Len(t, all, 1)
		assert.Equal(t, "E: first second 13:45:00", all[0])
	})

	t.Run("LongTextTruncated", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, strings.Repeat("z", core.MaxMessageLength*2)))

		msgs := s.Messages()
		require.Len(t, msgs, 1)
		assert.Len(t, msgs[0].Text, core.MaxMessageLength)
	})
}

func TestStore_AppendErrors(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Append(core.Info, "keep"))

	t.Run("InvalidSeverity", func(t *testing.T) {
		err := s.Append(core.Severity('X'), "text")
		assert.ErrorIs(t, err, core.ErrInvalidSeverity)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		err := s.Append(core.Info, "")
		assert.ErrorIs(t, err, core.ErrEmptyMessage)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("InvalidSeverityAndEmptyText", func(t *testing.T) {
		err := s.Append(core.Severity('q'), "")
		assert.ErrorIs(t, err, core.ErrInvalidSeverity)
		assert.Equal(t, 1, s.Len())
	})
}

func TestStore_RenderEmpty(t *testing.T) {
	s := NewStore()
	out, ok := s.Render()
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestStore_Clear(t *testing.T) {
	t.Run("ResetsToEmpty", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "a"))
		require.NoError(t, s.Append(core.Warning, "b"))

		s.Clear()
		assert.Equal(t, 0, s.Len())
		_, ok := s.Render()
		assert.False(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s := NewStore()
		s.Clear()
		s.Clear()
		assert.Equal(t, 0, s.Len())
	})

	t.Run("BehavesLikeFreshStore", func(t *testing.T) {
		start := time.Date(2022, 9, 12, 9, 0, 0, 0, time.Local)

		used := NewStore(WithClock(fixedClock(start)))
		require.NoError(t, used.Append(core.Error, "old"))
		used.Clear()
		used.now = fixedClock(start)
		require.NoError(t, used.Append(core.Info, "new"))

		fresh := NewStore(WithClock(fixedClock(start)))
		require.NoError(t, fresh.Append(core.Info, "new"))

		a, _ := used.Render()
		b, _ := fresh.Render()
		assert.Equal(t, b, a)
		assert.Equal(t, fresh.Len(), used.Len())
	})

	t.Run("CopiesSurviveClear", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "kept"))
		msgs := s.Messages()
		out, _ := s.Render()

		s.Clear()
		require.Len(t, msgs, 1)
		assert.Equal(t, "kept", msgs[0].Text)
		assert.Contains(t, out, "I: kept")
	})
}

func TestStore_Persist(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Append(core.Info, "Hello msg 1."))
		require.NoError(t, s.Append(core.Warning, "Boom"))
		require.NoError(t, s.Append(core.Info, "Ywag"))

		path := filepath.Join(t.TempDir(), "out.log")
		require.NoError(t, s.Persist(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		all := lines(t, string(data))
		require.Len(t, all, 3)
		assert.Regexp(t, `^I: Hello msg 1\. \d{2}:\d{2}:\d{2}$`, all[0])
		assert.Regexp(t, `^W: Boom \d{2}:\d{2}:\d{2}$`, all[1])
		assert.Regexp(t, `^I: Ywag \d{2}:\d{2}:\d{2}$`, all[2])

		// Persist does not clear
		assert.Equal(t, 3, s.Len())
	})

	t.Run("MatchesRender", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Error, "e"))

		path := filepath.Join(t.TempDir(), "messages.log")
		require.NoError(t, s.Persist(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out, _ := s.Render()
		assert.Equal(t, out, string(data))
	})

	t.Run("EmptyLogCreatesNoFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.log")

		err := NewStore().Persist(path)
		assert.ErrorIs(t, err, core.ErrEmptyLog)
		_, statErr := os.Stat(path)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("EmptyLogLeavesExistingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.log")
		require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

		err := NewStore().Persist(path)
		assert.ErrorIs(t, err, core.ErrEmptyLog)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "previous\n", string(data))
	})

	t.Run("IOErrorCarriesCause", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Append(core.Info, "x"))

		// A directory cannot be opened for writing
		err := s.Persist(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrIO)

		var ioErr *core.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.NotNil(t, ioErr.Unwrap())
	})
}

func TestStore_CustomFormatter(t *testing.T) {
	f, err := format.NewTextFormatter(&config.FormatConfig{Template: "{{.Severity}}|{{.Text}}"})
	require.NoError(t, err)

	s := NewStore(WithFormatter(f), WithClock(fixedClock(time.Now())))
	require.NoError(t, s.Append(core.Warning, "low disk"))

	out, ok := s.Render()
	require.True(t, ok)
	assert.Equal(t, "warning|low disk\n", out)
}

type failingFormatter struct{}

func (failingFormatter) Format(core.Message) ([]byte, error) { return nil, errors.New("boom") }
func (failingFormatter) Name() string { return "failing" }

func TestStore_FormatterFallback(t *testing.T) {
	s := NewStore(WithFormatter(failingFormatter{}), WithClock(fixedClock(time.Date(2022, 1, 1, 1, 2, 3, 0, time.Local))))
	require.NoError(t, s.Append(core.Fatal, "halt"))

	out, ok := s.Render()
	require.True(t, ok)
	assert.Equal(t, "F: halt 01:02:03\n", out)
}
