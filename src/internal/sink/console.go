// FILE: msglog/src/internal/sink/console.go
package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ConsoleSink writes the rendered log to stdout or stderr
type ConsoleSink struct {
	target string
	output io.Writer
	mu     sync.Mutex

	// Statistics
	totalWrites  atomic.Uint64
	totalBytes   atomic.Uint64
	failedWrites atomic.Uint64
	lastWrite    atomic.Value // time.Time
}

// NewConsoleSink creates a console sink for "stdout" or "stderr"
func NewConsoleSink(target string) (*ConsoleSink, error) {
	var output io.Writer
	switch target {
	case "", "stdout":
		target = "stdout"
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("invalid console target: %s", target)
	}
	return NewWriterSink(target, output), nil
}

// NewWriterSink wraps an arbitrary writer, mainly for tests and embedding
func NewWriterSink(name string, w io.Writer) *ConsoleSink {
	s := &ConsoleSink{
		target: name,
		output: w,
	}
	s.lastWrite.Store(time.Time{})
	return s
}

func (s *ConsoleSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.output.Write(p)
	s.totalBytes.Add(uint64(n))
	if err != nil {
		s.failedWrites.Add(1)
		return fmt.Errorf("console write to %s: %w", s.target, err)
	}

	s.totalWrites.Add(1)
	s.lastWrite.Store(time.Now())
	return nil
}

func (s *ConsoleSink) GetStats() SinkStats {
	lastWrite, _ := s.lastWrite.Load().(time.Time)

	return SinkStats{
		Type:         "console",
		TotalWrites:  s.totalWrites.Load(),
		TotalBytes:   s.totalBytes.Load(),
		FailedWrites: s.failedWrites.Load(),
		LastWrite:    lastWrite,
		Details: map[string]any{
			"target": s.target,
		},
	}
}
