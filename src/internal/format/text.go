// FILE: msglog/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"msglog/src/internal/config"
	"msglog/src/internal/core"
)

// TextFormatter renders records through a text/template. The default
// layout is "<code>: <text> <HH:MM:SS>" in local time.
type TextFormatter struct {
	config   config.FormatConfig
	template *template.Template
}

// NewTextFormatter builds a formatter; nil opts or empty fields fall back to defaults
func NewTextFormatter(opts *config.FormatConfig) (*TextFormatter, error) {
	f := &TextFormatter{
		config: config.FormatConfig{
			Template:        core.DefaultTemplate,
			TimestampFormat: core.DefaultTimestampFormat,
		},
	}
	if opts != nil {
		if opts.Template != "" {
			f.config.Template = opts.Template
		}
		if opts.TimestampFormat != "" {
			f.config.TimestampFormat = opts.TimestampFormat
		}
	}

	funcMap := template.FuncMap{
		"FmtTime": func(t time.Time) string {
			return t.Local().Format(f.config.TimestampFormat)
		},
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"TrimSpace": strings.TrimSpace,
	}

	tmpl, err := template.New("line").Funcs(funcMap).Parse(f.config.Template)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Format renders msg as exactly one line ending in '\n'
func (f *TextFormatter) Format(msg core.Message) ([]byte, error) {
	data := map[string]any{
		"Code":      msg.Severity.Code(),
		"Severity":  msg.Severity.String(),
		"Text":      msg.Text,
		"Timestamp": msg.Time,
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("template execution failed: %w", err)
	}

	// Records are stored without line breaks; a custom template may still add some
	return append([]byte(core.FoldLineBreaks(buf.String())), '\n'), nil
}

// Name returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
