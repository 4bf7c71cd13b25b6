// FILE: msglog/src/internal/msglog/store.go

// Package msglog holds the in-memory, append-only message log.
package msglog

import (
	"bytes"
	"fmt"
	"time"

	"msglog/src/internal/core"
	"msglog/src/internal/format"
	"msglog/src/internal/sink"
)

// Store is an ordered, append-only sequence of messages. It is not safe
// for concurrent use; wrap it in a SyncStore when sharing it.
type Store struct {
	messages  []core.Message
	formatter format.Formatter
	now       func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces the wall clock used to stamp appended messages
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithFormatter replaces the default "<code>: <text> <HH:MM:SS>" line layout
func WithFormatter(f format.Formatter) Option {
	return func(s *Store) {
		s.formatter = f
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatter == nil {
		// Defaults always parse
		f, _ := format.NewTextFormatter(nil)
		s.formatter = f
	}
	return s
}

// Append validates and stamps a message and adds it to the tail.
// It fails with core.ErrInvalidSeverity or core.ErrEmptyMessage and
// leaves the store unchanged on error. Text longer than
// core.MaxMessageLength is truncated.
func (s *Store) Append(severity core.Severity, text string) error {
	msg, err := core.NewMessage(severity, text, s.now())
	if err != nil {
		return err
	}
	s.messages = append(s.messages, msg)
	return nil
}

// Render returns every message as one line each, in insertion order.
// ok is false when the store is empty.
func (s *Store) Render() (text string, ok bool) {
	if len(s.messages) == 0 {
		return "", false
	}

	var buf bytes.Buffer
	for _, msg := range s.messages {
		line, err := s.formatter.Format(msg)
		if err != nil {
			line = fallbackLine(msg)
		}
		buf.Write(line)
	}
	return buf.String(), true
}

// RenderTo renders the log into dst. It fails with core.ErrEmptyLog
// without touching dst when the store is empty.
func (s *Store) RenderTo(dst sink.Sink) error {
	text, ok := s.Render()
	if !ok {
		return core.ErrEmptyLog
	}
	return dst.Write([]byte(text))
}

// Persist writes the rendered log to path, creating or truncating it.
// An empty store fails with core.ErrEmptyLog and no file is created;
// file errors are returned as *core.IOError. The store keeps its records.
func (s *Store) Persist(path string) error {
	return s.RenderTo(sink.NewFileSink(path))
}

// Clear discards every message. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	clear(s.messages)
	s.messages = nil
}

// Len returns the number of stored messages
func (s *Store) Len() int {
	return len(s.messages)
}

// Messages returns a copy of the stored records
func (s *Store) Messages() []core.Message {
	out := make([]core.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func fallbackLine(msg core.Message) []byte {
	return []byte(fmt.Sprintf("%s: %s %s\n",
		msg.Severity.Code(),
		msg.Text,
		msg.Time.Local().Format(core.DefaultTimestampFormat)))
}
