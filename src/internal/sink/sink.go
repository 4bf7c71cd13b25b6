// FILE: msglog/src/internal/sink/sink.go
package sink

import "time"

// Sink is a destination for a fully rendered log
type Sink interface {
	// Write delivers the rendered log verbatim
	Write(p []byte) error

	// GetStats returns sink statistics
	GetStats() SinkStats
}

// SinkStats contains statistics about a sink
type SinkStats struct {
	Type         string
	TotalWrites  uint64
	TotalBytes   uint64
	FailedWrites uint64
	LastWrite    time.Time
	Details      map[string]any
}
