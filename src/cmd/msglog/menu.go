// FILE: msglog/src/cmd/msglog/menu.go
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"msglog/src/internal/core"
	"msglog/src/internal/msglog"
	"msglog/src/internal/sink"
)

const menuText = `
1) Add message
2) Show log
3) Save log
4) Clear log
5) Quit
`

// Menu is the interactive front end over a store
type Menu struct {
	store  *msglog.Store
	save   *sink.FileSink
	in     *bufio.Reader
	out    io.Writer
	prompt bool
	err    error
}

// NewMenu creates a menu reading commands from in. Prompts and the menu
// listing are printed only when prompt is set (stdin is a terminal).
func NewMenu(store *msglog.Store, savePath string, in io.Reader, out io.Writer, prompt bool) *Menu {
	return &Menu{
		store:  store,
		save:   sink.NewFileSink(savePath),
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

// Run processes menu choices until quit, end of input, or a fatal message
func (m *Menu) Run() error {
	for {
		if m.prompt {
			fmt.Fprint(m.out, menuText)
		}
		choice, ok := m.readLine("choice> ")
		if !ok {
			return m.err
		}

		switch strings.ToLower(choice) {
		case "1", "a", "add":
			fatal, err := m.addMessage()
			if err != nil {
				return err
			}
			if fatal {
				return nil
			}
		case "2", "s", "show":
			m.showLog()
		case "3", "w", "save":
			m.saveLog()
		case "4", "c", "clear":
			m.store.Clear()
			fmt.Fprintln(m.out, "Log cleared")
		case "5", "q", "quit", "exit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(m.out, "Unknown choice: %s\n", choice)
		}
	}
}

// addMessage asks for severity then text, re-prompting on invalid input.
// It reports whether a fatal message was appended.
func (m *Menu) addMessage() (bool, error) {
	var severity core.Severity
	for {
		answer, ok := m.readLine("severity [I/W/E/F]> ")
		if !ok {
			return false, m.err
		}
		s, err := core.ParseSeverity(answer)
		if err != nil {
			fmt.Fprintln(m.out, "Severity must be one of I, W, E, F")
			continue
		}
		severity = s
		break
	}

	for {
		text, ok := m.readLine("message> ")
		if !ok {
			return false, m.err
		}

		err := m.store.Append(severity, text)
		if errors.Is(err, core.ErrEmptyMessage) {
			fmt.Fprintln(m.out, "Message must not be empty")
			continue
		}
		if err != nil {
			return false, err
		}
		break
	}

	logger.Debug("msg", "Message appended",
		"component", "menu",
		"severity", severity.String(),
		"records", m.store.Len())

	if severity != core.Fatal {
		return false, nil
	}

	fmt.Fprintln(m.out, "Fatal message received, saving log and exiting")
	m.saveLog()
	return true, nil
}

func (m *Menu) showLog() {
	err := m.store.RenderTo(sink.NewWriterSink("stdout", m.out))
	switch {
	case errors.Is(err, core.ErrEmptyLog):
		fmt.Fprintln(m.out, "Log is empty")
	case err != nil:
		logger.Warn("msg", "Failed to show log", "component", "menu", "error", err)
	}
}

func (m *Menu) saveLog() {
	err := m.store.RenderTo(m.save)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Saved %d messages to %s\n", m.store.Len(), m.save.Path())
		stats := m.save.GetStats()
		logger.Info("msg", "Log saved",
			"component", "menu",
			"path", m.save.Path(),
			"records", m.store.Len(),
			"bytes", stats.TotalBytes,
			"saves", stats.TotalWrites)
	case errors.Is(err, core.ErrEmptyLog):
		fmt.Fprintln(m.out, "Nothing to save, log is empty")
	default:
		fmt.Fprintf(m.out, "Save failed: %v\n", err)
		logger.Error("msg", "Failed to save log",
			"component", "menu",
			"path", m.save.Path(),
			"failed_saves", m.save.GetStats().FailedWrites,
			"error", err)
	}
}

// readLine returns the next input line without its line break. Lines of
// any length are accepted; the store truncates message text.
func (m *Menu) readLine(prompt string) (string, bool) {
	if m.prompt {
		fmt.Fprint(m.out, prompt)
	}
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.err = err
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}
