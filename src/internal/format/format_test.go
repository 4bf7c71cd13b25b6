// FILE: msglog/src/internal/format/format_test.go
package format

import (
	"testing"
	"time"

	"msglog/src/internal/config"
	"msglog/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, name := range []string{"", "text"} {
		f, err := New(name, nil)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, "text", f.Name())
	}

	f, err := New("xml", nil)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestNew_PassesFormatConfig(t *testing.T) {
	f, err := New("text", &config.FormatConfig{Template: "[{{.Severity}}] {{.Text}}"})
	require.NoError(t, err)

	line, err := f.Format(core.Message{Severity: core.Error, Text: "disk full", Time: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "[error] disk full\n", string(line))

	_, err = New("text", &config.FormatConfig{Template: "{{.Text"})
	assert.ErrorContains(t, err, "invalid template")
}
