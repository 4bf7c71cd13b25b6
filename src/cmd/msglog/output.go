// FILE: msglog/src/cmd/msglog/output.go
package main

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// OutputHandler carries every user-facing line; quiet mode drops them all
type OutputHandler struct {
	quiet  atomic.Bool
	stdout io.Writer
	stderr io.Writer
}

var output *OutputHandler

// InitOutputHandler points the process-wide handler at the real terminal
func InitOutputHandler(quiet bool) {
	output = NewOutputHandler(quiet, os.Stdout, os.Stderr)
}

func NewOutputHandler(quiet bool, stdout, stderr io.Writer) *OutputHandler {
	o := &OutputHandler{stdout: stdout, stderr: stderr}
	o.quiet.Store(quiet)
	return o
}

func (o *OutputHandler) Print(format string, args ...any) {
	if o.quiet.Load() {
		return
	}
	fmt.Fprintf(o.stdout, format, args...)
}

func (o *OutputHandler) Error(format string, args ...any) {
	if o.quiet.Load() {
		return
	}
	fmt.Fprintf(o.stderr, format, args...)
}

// Write makes the handler usable as the menu and demo output stream
func (o *OutputHandler) Write(p []byte) (int, error) {
	if o.quiet.Load() {
		return len(p), nil
	}
	return o.stdout.Write(p)
}

// FatalError reports on stderr unless quiet, then exits with code
func (o *OutputHandler) FatalError(code int, format string, args ...any) {
	o.Error(format, args...)
	os.Exit(code)
}

func (o *OutputHandler) SetQuiet(quiet bool) {
	o.quiet.Store(quiet)
}

// Print writes through the global handler, if any
func Print(format string, args ...any) {
	if output != nil {
		output.Print(format, args...)
	}
}

// Error writes through the global handler, if any
func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	}
}

// FatalError exits even before the handler exists
func FatalError(code int, format string, args ...any) {
	if output == nil {
		fmt.Fprintf(os.Stderr, format, args...)
		os.Exit(code)
	}
	output.FatalError(code, format, args...)
}
