// FILE: msglog/src/cmd/msglog/commands.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"msglog/src/internal/config"
	"msglog/src/internal/version"

	"golang.org/x/term"
)

// Handler defines the interface required for all subcommands
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter routes CLI arguments to a subcommand handler
type CommandRouter struct {
	commands map[string]Handler
	out      io.Writer
}

// defaultCommand runs when no subcommand is named
const defaultCommand = "run"

// NewCommandRouter creates the router with all available commands
func NewCommandRouter(out io.Writer) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		out:      out,
	}

	router.commands["run"] = &runCommand{}
	router.commands["demo"] = &demoCommand{}
	router.commands["serve"] = &serveCommand{}
	router.commands["config"] = &configCommand{}
	router.commands["version"] = &versionCommand{out: out}
	router.commands["help"] = &helpCommand{router: router, out: out}

	return router
}

// Route picks the command from args (program name excluded) and runs it
func (r *CommandRouter) Route(args []string) error {
	cmdName := defaultCommand
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmdName = args[0]
		args = args[1:]
	}

	handler, exists := r.commands[cmdName]
	if !exists {
		return fmt.Errorf("unknown command: %s\n\nRun 'msglog help' for usage", cmdName)
	}

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			if cmdName == defaultCommand || cmdName == "help" {
				return r.commands["help"].Execute(nil)
			}
			fmt.Fprint(r.out, handler.Help())
			return nil
		}
		if cmdName == defaultCommand && (arg == "-v" || arg == "--version") {
			return r.commands["version"].Execute(nil)
		}
	}

	return handler.Execute(args)
}

// GetCommand returns a command handler by name
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// formatCommandList creates an aligned list of all commands
func (r *CommandRouter) formatCommandList() string {
	names := make([]string, 0, len(r.commands))
	maxLen := 0
	for name := range r.commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, r.commands[name].Description()))
	}
	return strings.Join(lines, "\n")
}

// setup parses flags, loads config and starts the logger for a command
func setup(name string, args []string) (*config.Config, error) {
	fc, err := parseFlags(name, args, os.Stderr)
	if err != nil {
		return nil, err
	}
	if fc.Quiet && output != nil {
		output.SetQuiet(true)
	}

	cfg, err := loadConfig(fc)
	if err != nil {
		if fc.ConfigFile != "" && strings.Contains(err.Error(), "not found") {
			return nil, &exitError{code: 2, err: fmt.Errorf("config file not found: %s", fc.ConfigFile)}
		}
		return nil, err
	}
	if cfg.Quiet && output != nil {
		output.SetQuiet(true)
	}

	if err := initializeLogger(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("msg", "msglog starting",
		"command", name,
		"version", version.String(),
		"config_file", config.GetConfigPath(),
		"store_path", cfg.Store.Path)

	return cfg, nil
}

// exitError carries a specific process exit code
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type runCommand struct{}

func (c *runCommand) Execute(args []string) error {
	cfg, err := setup("run", args)
	if err != nil {
		return err
	}
	defer shutdownLogger()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	defer store.Clear()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	return NewMenu(store, cfg.Store.Path, os.Stdin, output, interactive && !cfg.Quiet).Run()
}

func (c *runCommand) Description() string {
	return "Interactive message log (default)"
}

func (c *runCommand) Help() string {
	return `Run Command - Interactive message log

Usage:
  msglog [run] [options]

Reads menu choices from stdin. Prompts are shown only on a terminal, so
choices can also be piped in, one per line:
  1  add a message (then severity I/W/E/F, then text)
  2  show the log
  3  save the log
  4  clear the log
  5  quit

A fatal (F) message saves the log and ends the session.

Options:
  -o, --output <path>   File the log is saved to (default: messages.log)
`
}

type demoCommand struct{}

func (c *demoCommand) Execute(args []string) error {
	cfg, err := setup("demo", args)
	if err != nil {
		return err
	}
	defer shutdownLogger()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	return newDemoRunner(store, cfg.Store.Path, cfg.Demo.SleepSeconds, int(cfg.Demo.Count), output).Run()
}

func (c *demoCommand) Description() string {
	return "Append sample messages, save and print the log"
}

func (c *demoCommand) Help() string {
	return `Demo Command - Scripted session

Usage:
  msglog demo [options]

Tries to save the empty log, appends three sample messages plus any
random ones, pausing a random time between messages, then saves, prints
and clears the log.

Options:
  -t, --sleep <sec>     Mean pause between messages; each pause is random in [0, 2*sec)
  -n, --count <n>       Extra random messages to append
  -o, --output <path>   File the log is saved to (default: messages.log)
`
}

type serveCommand struct{}

func (c *serveCommand) Execute(args []string) error {
	cfg, err := setup("serve", args)
	if err != nil {
		return err
	}
	defer shutdownLogger()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	return runServer(context.Background(), cfg, store)
}

func (c *serveCommand) Description() string {
	return "Serve the message log over HTTP"
}

func (c *serveCommand) Help() string {
	return `Serve Command - HTTP access to the message log

Usage:
  msglog serve [options]

Endpoints:
  POST   /messages   {"severity":"I","text":"..."}; a fatal message saves the log
  GET    /log        rendered log as text (204 when empty)
  POST   /log/save   save the log to the configured path
  DELETE /log        clear the log
  GET    /status     record count and server statistics

Options:
  --host <addr>         Listen address (default: 127.0.0.1)
  --port <port>         Listen port (default: 8080)
  -o, --output <path>   File the log is saved to (default: messages.log)
`
}

type configCommand struct{}

func (c *configCommand) Execute(args []string) error {
	fc, err := parseFlags("config", args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(fc)
	if err != nil {
		return err
	}

	if fc.SavePath != "" {
		if err := cfg.SaveToFile(fc.SavePath); err != nil {
			return err
		}
		Print("Configuration saved to %s\n", fc.SavePath)
		return nil
	}

	Print("config_file       = %s\n", config.GetConfigPath())
	Print("store.path        = %s\n", cfg.Store.Path)
	Print("format.template   = %s\n", cfg.Format.Template)
	Print("format.timestamp  = %s\n", cfg.Format.TimestampFormat)
	Print("logging.output    = %s\n", cfg.Logging.Output)
	Print("logging.level     = %s\n", cfg.Logging.Level)
	Print("server.address    = %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	Print("demo.sleep_sec    = %v\n", cfg.Demo.SleepSeconds)
	Print("demo.count        = %d\n", cfg.Demo.Count)
	return nil
}

func (c *configCommand) Description() string {
	return "Show or save the effective configuration"
}

func (c *configCommand) Help() string {
	return `Config Command - Effective configuration

Usage:
  msglog config [options]

Options:
  --save <path>         Write the effective configuration as TOML
  -c, --config <path>   Configuration file to load
`
}

type versionCommand struct {
	out io.Writer
}

func (c *versionCommand) Execute(args []string) error {
	fmt.Fprintln(c.out, version.String())
	return nil
}

func (c *versionCommand) Description() string {
	return "Show version information"
}

func (c *versionCommand) Help() string {
	return `Version Command - Show msglog version information

Usage:
  msglog version
  msglog -v
`
}

type helpCommand struct {
	router *CommandRouter
	out    io.Writer
}

func (c *helpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		handler, exists := c.router.GetCommand(args[0])
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprint(c.out, handler.Help())
		return nil
	}

	fmt.Fprintf(c.out, generalHelpTemplate, c.router.formatCommandList())
	return nil
}

func (c *helpCommand) Description() string {
	return "Display help information"
}

func (c *helpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  msglog help              Show general help
  msglog help <command>    Show help for a specific command
`
}
