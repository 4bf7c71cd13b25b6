// FILE: msglog/src/internal/config/validation.go
package config

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	lconfig "github.com/lixenwraith/config"
)

// validateConfig is the single validator for the whole configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := lconfig.NonEmpty(cfg.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}

	if err := validateFormat(&cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if cfg.Demo.SleepSeconds < 0 {
		return fmt.Errorf("demo.sleep_seconds must not be negative: %v", cfg.Demo.SleepSeconds)
	}
	if cfg.Demo.Count < 0 {
		return fmt.Errorf("demo.count must not be negative: %d", cfg.Demo.Count)
	}

	return nil
}

func validateServer(cfg *ServerConfig) error {
	if err := lconfig.Port(cfg.Port); err != nil {
		return fmt.Errorf("invalid port %d: %w", cfg.Port, err)
	}

	if cfg.Host != "" {
		if err := lconfig.IPAddress(cfg.Host); err != nil {
			return fmt.Errorf("invalid host %q: %w", cfg.Host, err)
		}
	}

	if cfg.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative: %v", cfg.RequestsPerSecond)
	}
	if cfg.RequestsPerSecond > 0 && cfg.BurstSize < 1 {
		return fmt.Errorf("burst_size must be positive when rate limiting: %d", cfg.BurstSize)
	}
	if cfg.MaxBodyBytes < 1 {
		return fmt.Errorf("max_body_bytes must be positive: %d", cfg.MaxBodyBytes)
	}

	return nil
}

func validateFormat(cfg *FormatConfig) error {
	if strings.TrimSpace(cfg.Template) == "" {
		return fmt.Errorf("template is empty")
	}

	// Parse with stub funcs so template errors surface at load time
	funcs := template.FuncMap{
		"FmtTime":   func(time.Time) string { return "" },
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"TrimSpace": strings.TrimSpace,
	}
	if _, err := template.New("line").Funcs(funcs).Parse(cfg.Template); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	if cfg.TimestampFormat == "" {
		return fmt.Errorf("timestamp_format is empty")
	}

	return nil
}
