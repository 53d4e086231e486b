// Command workgraph loads an HCL workflow description and prints the
// unrolled dependency graph it expands to. Grounded on the teacher's
// cmd/cli/main.go split between a minimal bootstrap logger, flag parsing via
// internal/cli, and a run() wrapper that cmd/cli/main_test.go below exercises
// without a process boundary.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/workgraph/internal/cli"
	"github.com/vk/workgraph/internal/ctxlog"
	"github.com/vk/workgraph/internal/graph"
	"github.com/vk/workgraph/internal/irhcl"
)

func main() {
	slog.SetDefault(ctxlog.NewDefault())

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(os.Stderr, config.LogFormat, ctxlog.ParseLevel(config.LogLevel))
	slog.SetDefault(logger)

	src, err := os.ReadFile(config.GraphPath)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("reading %s: %v", config.GraphPath, err)}
	}

	file, err := irhcl.Load(config.GraphPath, src)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	wf, err := irhcl.ToWorkflow(file)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	view, err := graph.New(wf)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("unrolling graph: %v", err)}
	}

	return printGraph(outW, view)
}

func printGraph(outW io.Writer, view graph.View) error {
	for _, task := range view.Tasks() {
		if _, err := fmt.Fprintf(outW, "task  %s\n", task.ID()); err != nil {
			return err
		}
	}
	for _, data := range view.Data() {
		if _, err := fmt.Fprintf(outW, "data  %s [%s]\n", data.ID(), data.Availability); err != nil {
			return err
		}
	}
	for _, edge := range view.Edges() {
		if _, err := fmt.Fprintf(outW, "edge  %s -> %s (%s)\n", edge.Source.ID(), edge.Sink.ID(), edge.Role); err != nil {
			return err
		}
	}
	return nil
}
