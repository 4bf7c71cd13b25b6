// FILE: msglog/src/internal/version/version_test.go
package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, "msglog "+Version)
	assert.Contains(t, s, runtime.Version())
	assert.Equal(t, Version, Short())
}
