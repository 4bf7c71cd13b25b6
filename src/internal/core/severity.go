// FILE: msglog/src/internal/core/severity.go
package core

import (
	"fmt"
	"strings"
)

// Severity classifies a message. Only the four codes below are valid.
type Severity byte

const (
	Info    Severity = 'I'
	Warning Severity = 'W'
	Error   Severity = 'E'
	Fatal   Severity = 'F'
)

// Severities lists every valid severity in display order
var Severities = []Severity{Info, Warning, Error, Fatal}

// Valid reports whether s is one of the four known codes
func (s Severity) Valid() bool {
	switch s {
	case Info, Warning, Error, Fatal:
		return true
	default:
		return false
	}
}

// Code returns the single-letter code used in rendered output
func (s Severity) Code() string {
	return string(rune(s))
}

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%q)", rune(s))
	}
}

// ParseSeverity accepts a single-letter code (I/W/E/F) or a long name, case-insensitive
func ParseSeverity(value string) (Severity, error) {
	v := strings.TrimSpace(value)
	if len(v) == 1 {
		s := Severity(strings.ToUpper(v)[0])
		if s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, value)
	}

	switch strings.ToLower(v) {
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, value)
}
