// FILE: msglog/src/internal/core/entry.go
package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMessageLength is the longest message body kept, in characters. Longer input is truncated.
const MaxMessageLength = 200

const (
	// DefaultTemplate renders "<code>: <text> <HH:MM:SS>"
	DefaultTemplate        = "{{.Code}}: {{.Text}} {{FmtTime .Timestamp}}"
	DefaultTimestampFormat = "15:04:05"
)

// Message is a single immutable record held by the store
type Message struct {
	Severity Severity  `json:"severity"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}

// NewMessage validates severity and text and stamps the record with now.
// Line breaks are removed from text so a message always renders as one line.
func NewMessage(severity Severity, text string, now time.Time) (Message, error) {
	if !severity.Valid() {
		return Message{}, ErrInvalidSeverity
	}
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	text = NormalizeText(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	return Message{
		Severity: severity,
		Text:     text,
		Time:     now,
	}, nil
}

// NormalizeText strips trailing line breaks, folds embedded ones into a
// single space and truncates the result to MaxMessageLength characters.
func NormalizeText(text string) string {
	return truncate(FoldLineBreaks(text), MaxMessageLength)
}

// FoldLineBreaks trims trailing line breaks and replaces each embedded
// CRLF, LF or CR with one space.
func FoldLineBreaks(text string) string {
	text = strings.TrimRight(text, "\r\n")
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, text)
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}
