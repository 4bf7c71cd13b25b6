// FILE: msglog/src/internal/sink/file.go
package sink

import (
	"os"
	"sync/atomic"
	"time"

	"msglog/src/internal/core"
)

// FileSink replaces the content of a single file on every write
type FileSink struct {
	path string
	perm os.FileMode

	// Statistics
	totalWrites  atomic.Uint64
	totalBytes   atomic.Uint64
	failedWrites atomic.Uint64
	lastWrite    atomic.Value // time.Time
}

// NewFileSink creates a sink for path. The file is not touched until Write.
func NewFileSink(path string) *FileSink {
	fs := &FileSink{
		path: path,
		perm: 0o644,
	}
	fs.lastWrite.Store(time.Time{})
	return fs
}

// Path returns the target file path
func (fs *FileSink) Path() string {
	return fs.path
}

// Write creates or truncates the file, writes p and closes it.
// Failures are returned as *core.IOError.
func (fs *FileSink) Write(p []byte) (err error) {
	defer func() {
		if err != nil {
			fs.failedWrites.Add(1)
		}
	}()

	f, err := os.OpenFile(fs.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.perm)
	if err != nil {
		return &core.IOError{Op: "open", Path: fs.path, Err: err}
	}

	if _, err := f.Write(p); err != nil {
		f.Close()
		return &core.IOError{Op: "write", Path: fs.path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &core.IOError{Op: "close", Path: fs.path, Err: err}
	}

	fs.totalWrites.Add(1)
	fs.totalBytes.Add(uint64(len(p)))
	fs.lastWrite.Store(time.Now())
	return nil
}

func (fs *FileSink) GetStats() SinkStats {
	lastWrite, _ := fs.lastWrite.Load().(time.Time)

	return SinkStats{
		Type:         "file",
		TotalWrites:  fs.totalWrites.Load(),
		TotalBytes:   fs.totalBytes.Load(),
		FailedWrites: fs.failedWrites.Load(),
		LastWrite:    lastWrite,
		Details: map[string]any{
			"path": fs.path,
		},
	}
}
