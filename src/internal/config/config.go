// FILE: msglog/src/internal/config/config.go
package config

// Config is the complete msglog configuration
type Config struct {
	// Suppress all console output, including errors
	Quiet bool `toml:"quiet"`

	Store   StoreConfig  `toml:"store"`
	Format  FormatConfig `toml:"format"`
	Logging *LogConfig   `toml:"logging"`
	Server  ServerConfig `toml:"server"`
	Demo    DemoConfig   `toml:"demo"`
}

// StoreConfig holds collaborator-level defaults for the log store
type StoreConfig struct {
	// File written by save, and on a fatal message
	Path string `toml:"path"`
}

// FormatConfig controls how each record is rendered as a line
type FormatConfig struct {
	// text/template layout; fields: .Code .Severity .Text .Timestamp
	Template string `toml:"template"`

	// Go time layout applied by FmtTime, always in local time
	TimestampFormat string `toml:"timestamp_format"`
}

// ServerConfig configures the optional HTTP front end
type ServerConfig struct {
	Host string `toml:"host"`
	Port int64  `toml:"port"`

	// Per-client token bucket, 0 disables limiting
	RequestsPerSecond float64 `toml:"requests_per_second"`
	BurstSize         int64   `toml:"burst_size"`

	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

// DemoConfig drives the scripted demo run
type DemoConfig struct {
	// Mean pause between appends; each pause is random in [0, 2*sleep)
	SleepSeconds float64 `toml:"sleep_seconds"`

	// Extra random messages appended after the fixed ones
	Count int64 `toml:"count"`
}
