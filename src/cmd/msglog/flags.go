// FILE: msglog/src/cmd/msglog/flags.go
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Command-line flags shared by every subcommand
type flagConfig struct {
	ConfigFile string
	Quiet      bool
	OutputPath string
	LogLevel   string
	LogOutput  string

	// demo
	SleepSeconds float64
	Count        int64

	// serve
	Host string
	Port int64

	// config
	SavePath string

	// overrides for the config layer, in "--key.path=value" form
	overrides []string
}

func parseFlags(name string, args []string, errOut io.Writer) (*flagConfig, error) {
	fc := &flagConfig{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&fc.ConfigFile, "c", "", "Config file path")
	fs.StringVar(&fc.ConfigFile, "config", "", "Config file path")
	fs.BoolVar(&fc.Quiet, "q", false, "Suppress all console output")
	fs.BoolVar(&fc.Quiet, "quiet", false, "Suppress all console output")
	fs.StringVar(&fc.OutputPath, "o", "", "File the log is saved to (default messages.log)")
	fs.StringVar(&fc.OutputPath, "output", "", "File the log is saved to (default messages.log)")
	fs.StringVar(&fc.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&fc.LogOutput, "log-output", "", "Log output: file, stdout, stderr, both, none")
	fs.Float64Var(&fc.SleepSeconds, "t", 0, "Demo: mean seconds between messages")
	fs.Float64Var(&fc.SleepSeconds, "sleep", 0, "Demo: mean seconds between messages")
	fs.Int64Var(&fc.Count, "n", 0, "Demo: extra random messages")
	fs.Int64Var(&fc.Count, "count", 0, "Demo: extra random messages")
	fs.StringVar(&fc.Host, "host", "", "Serve: listen address")
	fs.Int64Var(&fc.Port, "port", 0, "Serve: listen port")
	fs.StringVar(&fc.SavePath, "save", "", "Config: write the effective config to this file")

	fs.Usage = func() {
		fmt.Fprintf(errOut, "Run 'msglog help %s' for usage\n", name)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if err := fc.validate(); err != nil {
		return nil, err
	}

	// Only flags given explicitly override lower config layers
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "q", "quiet":
			fc.addOverride("quiet", f.Value.String())
		case "o", "output":
			fc.addOverride("store.path", f.Value.String())
		case "log-level":
			fc.addOverride("logging.level", f.Value.String())
		case "log-output":
			fc.addOverride("logging.output", f.Value.String())
		case "t", "sleep":
			fc.addOverride("demo.sleep_seconds", f.Value.String())
		case "n", "count":
			fc.addOverride("demo.count", f.Value.String())
		case "host":
			fc.addOverride("server.host", f.Value.String())
		case "port":
			fc.addOverride("server.port", f.Value.String())
		}
	})

	return fc, nil
}

func (fc *flagConfig) addOverride(key, value string) {
	arg := fmt.Sprintf("--%s=%s", key, value)
	for _, existing := range fc.overrides {
		if existing == arg {
			return
		}
	}
	fc.overrides = append(fc.overrides, arg)
}

func (fc *flagConfig) validate() error {
	if fc.LogOutput != "" {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true,
			"both": true, "none": true,
		}
		if !validOutputs[fc.LogOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, both, none)", fc.LogOutput)
		}
	}

	if fc.LogLevel != "" {
		if _, err := parseLogLevel(fc.LogLevel); err != nil {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", fc.LogLevel)
		}
		fc.LogLevel = strings.ToLower(fc.LogLevel)
	}

	if fc.SleepSeconds < 0 {
		return fmt.Errorf("invalid sleep: %v (must not be negative)", fc.SleepSeconds)
	}
	if fc.Count < 0 {
		return fmt.Errorf("invalid count: %d (must not be negative)", fc.Count)
	}

	return nil
}
