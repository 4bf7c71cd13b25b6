// FILE: msglog/src/cmd/msglog/help.go
package main

// generalHelpTemplate is shown when no specific command is requested
const generalHelpTemplate = `msglog: an in-memory message log with severities.

Usage:
  msglog [command] [options]

Commands:
%s

Options:
  -c, --config <path>      Path to configuration file (default: ~/.config/msglog.toml)
  -o, --output <path>      File the log is saved to (default: messages.log)
  -q, --quiet              Suppress all console output, including errors
      --log-level <level>  Application log level: debug, info, warn, error
      --log-output <mode>  Application log output: file, stdout, stderr, both, none
  -h, --help               Display this help message and exit
  -v, --version            Display version information and exit

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI flags override all other settings
  - MSGLOG_* environment variables override file settings
  - TOML configuration file

Examples:
  # Interactive session, saving to a custom file
  msglog -o session.log

  # Scripted demo with random pauses averaging 2 seconds
  msglog demo -t 2 -n 5

  # HTTP access on port 9000
  msglog serve --port 9000
`
