// Command lending runs book lending operations against an in-memory registry.
//
// Usage:
//
//	lending [flags] <command> [args]
//
// Commands are borrow, return, check, invariant, list, history, demo and script.
// The registry is built from LENDING_SEED (or the reference seed) on every start and is gone when the process ends.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AntonStoeckl/lending-registry-go/config"
	"github.com/AntonStoeckl/lending-registry-go/lending"
	"github.com/AntonStoeckl/lending-registry-go/oteladapters"
	"github.com/AntonStoeckl/lending-registry-go/shell"
)

const (
	serviceName    = "lending-registry"
	serviceVersion = "0.1.0"

	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usageText = `usage: lending [flags] <command> [args]

commands:
  borrow <bookId> <userId>   lend a book to a user
  return <bookId> <userId>   take a book back from a user
  check <bookId>             show whether a book is available
  invariant                  verify the registry is consistent
  list                       show all books
  history                    show the events recorded in this run
  demo                       run the reference scenario
  script                     read one command per line from stdin

flags:
`

// newObservabilityProviders is replaced in tests to observe the providers of a run.
var newObservabilityProviders = config.NewObservabilityProviders

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lending", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprint(stderr, usageText)
		flags.PrintDefaults()
	}

	jsonOutput := flags.Bool("json", false, "print reports and history as JSON")
	envFile := flags.String("env", ".env", "optional env file with LENDING_* settings")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	ctx := context.Background()

	a, err := newApp(ctx, cfg, stdin, stdout, stderr, *jsonOutput)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	defer a.close(ctx)

	if err := a.execute(ctx, flags.Args()); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)

		if errors.Is(err, errUsage) {
			flags.Usage()
			return exitUsage
		}

		return exitFailure
	}

	return exitOK
}

// app is one CLI run: a registry, its journal and the writers it prints to.
type app struct {
	registry   *lending.Registry
	journal    *shell.Journal
	providers  *config.ObservabilityProviders
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	jsonOutput bool
}

func newApp(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer, jsonOutput bool) (*app, error) {
	a := &app{
		journal:    shell.NewJournal(),
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		jsonOutput: jsonOutput,
	}

	consoleHandler := config.NewLogHandler(stderr, cfg)
	options := []lending.Option{lending.WithEventRecorder(a.journal)}

	if cfg.ObservabilityEnabled {
		providers, err := newObservabilityProviders(ctx, serviceName, serviceVersion)
		if err != nil {
			return nil, err
		}

		a.providers = providers
		options = append(options,
			lending.WithContextualLogger(oteladapters.NewSlogBridgeLogger(serviceName, consoleHandler)),
			lending.WithMetrics(oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(serviceName))),
			lending.WithTracing(oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(serviceName))),
		)
	} else {
		options = append(options, lending.WithLogger(slog.New(consoleHandler)))
	}

	registry, err := lending.NewRegistry(cfg.Seed, options...)
	if err != nil {
		if a.providers != nil {
			return nil, errors.Join(err, a.providers.Shutdown(ctx))
		}

		return nil, err
	}

	a.registry = registry

	return a, nil
}

// close prints the metric summary of the run, if observability is enabled, and stops the providers.
func (a *app) close(ctx context.Context) {
	if a.providers == nil {
		return
	}

	lines, err := oteladapters.SummarizeMetrics(ctx, a.providers.MetricReader)
	if err != nil {
		_, _ = fmt.Fprintf(a.stderr, "error: collecting metrics: %v\n", err)
	}

	for _, line := range lines {
		_, _ = fmt.Fprintf(a.stderr, "metric: %s\n", line)
	}

	if err := a.providers.Shutdown(ctx); err != nil {
		_, _ = fmt.Fprintf(a.stderr, "error: shutting down observability: %v\n", err)
	}
}
