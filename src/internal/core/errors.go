// FILE: msglog/src/internal/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeverity is returned for a severity outside I/W/E/F
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrEmptyMessage is returned when the message text is empty
	ErrEmptyMessage = errors.New("empty message")
	// ErrEmptyLog is returned when persisting a store that holds no records
	ErrEmptyLog = errors.New("log is empty")
	// ErrIO matches every *IOError via errors.Is
	ErrIO = errors.New("i/o error")
)

// IOError carries the OS error behind a failed open, write or close
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
