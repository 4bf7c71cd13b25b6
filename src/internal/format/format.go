// FILE: msglog/src/internal/format/format.go
package format

import (
	"fmt"

	"msglog/src/internal/config"
	"msglog/src/internal/core"
)

// Formatter turns one message record into one newline-terminated line
type Formatter interface {
	Format(msg core.Message) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a Formatter by name. An empty name selects "text".
func New(name string, opts *config.FormatConfig) (Formatter, error) {
	if name == "" {
		name = "text"
	}

	switch name {
	case "text":
		f, err := NewTextFormatter(opts)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
