// FILE: msglog/src/internal/config/logging.go
package config

import "fmt"

// LogConfig is the application logger configuration. It does not affect
// the message store, which never logs.
type LogConfig struct {
	// Output mode: "file", "stdout", "stderr", "both", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	File    *LogFileConfig    `toml:"file"`
	Console *LogConsoleConfig `toml:"console"`
}

// LogFileConfig places the application log file
type LogFileConfig struct {
	Directory string `toml:"directory"`
	Name      string `toml:"name"`
}

type LogConsoleConfig struct {
	// "stdout", "stderr" or "split"
	Target string `toml:"target"`
}

// DefaultLogConfig keeps the interactive terminal clean: application logs
// go nowhere unless asked for.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "none",
		Level:  "info",
		File: &LogFileConfig{
			Directory: "./log",
			Name:      "msglog",
		},
		Console: &LogConsoleConfig{
			Target: "stderr",
		},
	}
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("missing logging section")
	}

	switch cfg.Output {
	case "none", "stdout", "stderr":
	case "file", "both":
		if cfg.File == nil || cfg.File.Directory == "" || cfg.File.Name == "" {
			return fmt.Errorf("output %q needs logging.file directory and name", cfg.Output)
		}
	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	switch cfg.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Console != nil {
		switch cfg.Console.Target {
		case "stdout", "stderr", "split":
		default:
			return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
		}
	}

	return nil
}
