// FILE: msglog/src/cmd/msglog/bootstrap.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"msglog/src/internal/config"
	"msglog/src/internal/format"
	"msglog/src/internal/msglog"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

// loadConfig resolves the config file from flags and loads every layer
func loadConfig(fc *flagConfig) (*config.Config, error) {
	if fc.ConfigFile != "" {
		os.Setenv("MSGLOG_CONFIG_FILE", fc.ConfigFile)
	}

	cfg, err := config.Load(fc.overrides)
	if err != nil {
		return nil, err
	}
	if fc.Quiet {
		cfg.Quiet = true
	}
	return cfg, nil
}

// newStore builds a store whose line layout follows the config
func newStore(cfg *config.Config) (*msglog.Store, error) {
	f, err := format.New("text", &cfg.Format)
	if err != nil {
		return nil, err
	}
	return msglog.NewStore(msglog.WithFormatter(f)), nil
}

// initializeLogger sets up the application logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()
	logCfg := log.DefaultConfig()

	level, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logCfg.Level = level

	output := cfg.Logging.Output
	if cfg.Quiet {
		output = "none"
	}

	switch output {
	case "none":
		logCfg.DisableFile = true
		logCfg.EnableConsole = false

	case "stdout", "stderr":
		logCfg.DisableFile = true
		logCfg.EnableConsole = true
		logCfg.ConsoleTarget = output

	case "file":
		logCfg.EnableConsole = false
		configureFileLogging(logCfg, cfg)

	case "both":
		logCfg.EnableConsole = true
		configureFileLogging(logCfg, cfg)
		configureConsoleTarget(logCfg, cfg)

	default:
		return fmt.Errorf("invalid log output mode: %s", output)
	}

	if err := logger.ApplyConfig(logCfg); err != nil {
		return fmt.Errorf("failed to apply logger config: %w", err)
	}
	return logger.Start()
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(logCfg *log.Config, cfg *config.Config) {
	logCfg.DisableFile = false
	if cfg.Logging.File != nil {
		logCfg.Directory = cfg.Logging.File.Directory
		logCfg.Name = cfg.Logging.File.Name
	}
}

// configureConsoleTarget sets up console output parameters
func configureConsoleTarget(logCfg *log.Config, cfg *config.Config) {
	target := "stderr"
	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}
	logCfg.ConsoleTarget = target
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

func parseLogLevel(level string) (int64, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
