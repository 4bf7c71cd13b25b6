// FILE: msglog/src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"msglog/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

const (
	// DefaultStorePath is used when no path is configured
	DefaultStorePath = "messages.log"

	envPrefix = "MSGLOG_"
)

func defaults() *Config {
	return &Config{
		Quiet: false,
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
		Format: FormatConfig{
			Template:        core.DefaultTemplate,
			TimestampFormat: core.DefaultTimestampFormat,
		},
		Logging: DefaultLogConfig(),
		Server: ServerConfig{
			Host:              "127.0.0.1",
			Port:              8080,
			RequestsPerSecond: 20,
			BurstSize:         40,
			MaxBodyBytes:      4096,
		},
		Demo: DemoConfig{
			SleepSeconds: 1,
			Count:        0,
		},
	}
}

// Defaults returns a fresh copy of the built-in configuration
func Defaults() *Config {
	return defaults()
}

// Load builds the configuration from defaults, the config file, MSGLOG_
// environment variables and CLI overrides in "--key.path=value" form.
// A missing config file is not an error.
func Load(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan("", finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, validateConfig(finalConfig)
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// GetConfigPath resolves the config file from MSGLOG_CONFIG_FILE,
// MSGLOG_CONFIG_DIR, the user config dir, then the working directory.
func GetConfigPath() string {
	if configFile := os.Getenv("MSGLOG_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("MSGLOG_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("MSGLOG_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "msglog.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "msglog.toml")
	}

	return "msglog.toml"
}
