// Package cli parses the demo command's flags, grounded on the teacher's
// internal/cli package (flag.FlagSet + a custom ExitError carrying a process
// exit code, kept separate from cmd/cli/main.go so the parsing logic is
// testable without a process boundary).
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code a caller should use, distinct
// from a plain error which always exits 1.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Config holds the parsed command-line configuration for the demo unroller.
type Config struct {
	GraphPath string
	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments into a Config. It returns
// shouldExit=true (with a nil error) when usage was printed and the caller
// should exit cleanly, e.g. -h or a missing required argument.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("workgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
workgraph - unrolls a cyclic, parameterized workflow description into a
concrete dependency graph.

Usage:
  workgraph [options] GRAPH_PATH

Arguments:
  GRAPH_PATH
    Path to an .hcl workflow description.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		GraphPath: flagSet.Arg(0),
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}, false, nil
}
