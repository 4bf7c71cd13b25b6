// FILE: msglog/src/internal/config/saver.go
package config

import (
	"fmt"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// SaveToFile writes the configuration to path as TOML
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	lcfg, err := lconfig.NewBuilder().
		WithFile(path).
		WithTarget(c).
		WithFileFormat("toml").
		Build()
	// A new file reports "not found" but still yields a usable builder
	if err != nil && (lcfg == nil || !strings.Contains(err.Error(), "not found")) {
		return fmt.Errorf("failed to create config builder: %w", err)
	}

	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
