// FILE: msglog/src/internal/sink/file_test.go
package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"msglog/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Write(t *testing.T) {
	t.Run("CreatesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.log")
		fs := NewFileSink(path)

		require.NoError(t, fs.Write([]byte("I: a 10:00:00\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "I: a 10:00:00\n", string(data))

		stats := fs.GetStats()
		assert.Equal(t, uint64(1), stats.TotalWrites)
		assert.Equal(t, uint64(14), stats.TotalBytes)
		assert.Equal(t, path, stats.Details["path"])
		assert.False(t, stats.LastWrite.IsZero())
	})

	t.Run("TruncatesExisting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.log")
		require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0o644))

		fs := NewFileSink(path)
		require.NoError(t, fs.Write([]byte("W: b 10:00:01\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "W: b 10:00:01\n", string(data))
	})

	t.Run("OpenFailureIsIOError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "messages.log")
		fs := NewFileSink(path)

		err := fs.Write([]byte("x\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrIO)
		assert.ErrorIs(t, err, os.ErrNotExist)

		var ioErr *core.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "open", ioErr.Op)
		assert.Equal(t, path, ioErr.Path)
		assert.Equal(t, uint64(1), fs.GetStats().FailedWrites)
	})
}

func TestConsoleSink(t *testing.T) {
	t.Run("InvalidTarget", func(t *testing.T) {
		_, err := NewConsoleSink("printer")
		assert.Error(t, err)
	})

	t.Run("DefaultTargetIsStdout", func(t *testing.T) {
		s, err := NewConsoleSink("")
		require.NoError(t, err)
		assert.Equal(t, "stdout", s.GetStats().Details["target"])
	})

	t.Run("WritesVerbatim", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSink("buffer", &buf)

		require.NoError(t, s.Write([]byte("E: disk full 23:59:59\n")))
		assert.Equal(t, "E: disk full 23:59:59\n", buf.String())
		assert.Equal(t, uint64(1), s.GetStats().TotalWrites)
	})
}
