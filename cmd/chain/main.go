// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// chain builds a linked chain from values and prints it in order.
//
// Usage:
//
//	chain [flags] value...
//	chain -f config.yaml -o snapshot.yaml
//	chain -in snapshot.yaml extra
//	chain -metrics-file /var/lib/node_exporter/chain.prom a b
//
// A snapshot loaded with -in seeds the chain and values given as arguments
// are appended to it. Values listed in the config file are used only when
// neither a snapshot nor arguments are given.
//
// Settings are resolved as flags > environment > config file > defaults.
//
// Exit codes:
//   - 0: Chain built (and snapshot written, if requested)
//   - 1: Configuration, snapshot or I/O error
//   - 2: Usage error (bad flags or no values)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/chain/internal/chain"
	"github.com/ManuGH/chain/internal/chainfile"
	"github.com/ManuGH/chain/internal/config"
	"github.com/ManuGH/chain/internal/log"
	"github.com/ManuGH/chain/internal/metrics"
	"github.com/ManuGH/chain/internal/version"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var errNoValues = errors.New("no values given")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	file        string
	output      string
	input       string
	logLevel    string
	metricsFile string
	showVersion bool
	values      []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("chain", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.file, "file", "", "path to YAML configuration file")
	fs.StringVar(&opts.file, "f", "", "path to YAML configuration file (shorthand)")
	fs.StringVar(&opts.output, "output", "", "write the chain to this snapshot file")
	fs.StringVar(&opts.output, "o", "", "write the chain to this snapshot file (shorthand)")
	fs.StringVar(&opts.input, "input", "", "load the chain from this snapshot file")
	fs.StringVar(&opts.input, "in", "", "load the chain from this snapshot file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write metrics in Prometheus text format to this .prom file")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.values = fs.Args()
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	// Loader output is emitted before the config file is read, so it uses
	// the level given by flag or environment.
	configureLogging(bootstrapLevel(opts), stderr)

	loader := config.NewLoader(strings.TrimSpace(opts.file), version.Version)
	cfg, err := loader.Load()
	if err != nil {
		if opts.file != "" {
			fmt.Fprintf(stderr, "Configuration error in %s:\n  %v\n", opts.file, err)
		} else {
			fmt.Fprintf(stderr, "Configuration error:\n  %v\n", err)
		}
		return 1
	}
	applyFlags(&cfg, opts)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Configuration error:\n  %v\n", err)
		return 1
	}

	configureLogging(cfg.LogLevel, stderr)

	ctx := log.ContextWithCorrelationID(context.Background(), uuid.NewString())
	logger := log.WithComponentFromContext(ctx, "cli")

	root, source, err := build(cfg, opts.values)
	if err != nil {
		if errors.Is(err, errNoValues) {
			fmt.Fprintln(stderr, "Error: no values given")
			fmt.Fprintln(stderr, "")
			fmt.Fprintln(stderr, "Usage:")
			fmt.Fprintln(stderr, "  chain [flags] value...")
			fmt.Fprintln(stderr, "  chain -in snapshot.yaml")
			return 2
		}
		logger.Error().Err(err).Str(log.FieldEvent, "chain.build_failed").Msg("failed to build chain")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exportMetrics(cfg, logger, stderr)
		return 1
	}

	metrics.SetChainLength(root.Len())
	logger.Info().
		Str(log.FieldEvent, "chain.built").
		Str(log.FieldSource, source).
		Int(log.FieldLength, root.Len()).
		Msg("chain built")

	for v := range root.All() {
		fmt.Fprintln(stdout, v)
	}

	code := 0
	if cfg.Output != "" {
		err := chainfile.Write(cfg.Output, root)
		metrics.RecordSnapshotWrite(err)
		if err != nil {
			logger.Error().Err(err).Str(log.FieldPath, cfg.Output).Msg("failed to write snapshot")
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
		} else {
			logger.Info().
				Str(log.FieldEvent, "chain.snapshot_written").
				Str(log.FieldPath, cfg.Output).
				Msg("snapshot written")
		}
	}

	if !exportMetrics(cfg, logger, stderr) {
		code = 1
	}
	return code
}

func configureLogging(level string, stderr io.Writer) {
	log.Reset()
	log.Configure(log.Config{
		Level:   level,
		Output:  stderr,
		Version: version.Version,
	})
}

// bootstrapLevel is the log level known before the config file is read.
func bootstrapLevel(opts options) string {
	if opts.logLevel != "" {
		return opts.logLevel
	}
	return os.Getenv(config.EnvLogLevel)
}

// exportMetrics writes the metrics textfile when one is configured and
// reports whether that succeeded.
func exportMetrics(cfg config.AppConfig, logger zerolog.Logger, stderr io.Writer) bool {
	if cfg.MetricsFile == "" {
		return true
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error().Err(err).Str(log.FieldPath, cfg.MetricsFile).Msg("failed to write metrics")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return false
	}
	logger.Debug().
		Str(log.FieldEvent, "chain.metrics_written").
		Str(log.FieldPath, cfg.MetricsFile).
		Msg("metrics written")
	return true
}

// applyFlags lets explicit flags override env and file settings.
func applyFlags(cfg *config.AppConfig, opts options) {
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.input != "" {
		cfg.Input = opts.input
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}
}

// build assembles the chain from the configured sources and reports which
// source supplied the root.
func build(cfg config.AppConfig, args []string) (*chain.Node[string], string, error) {
	var root *chain.Node[string]
	source := "args"

	if cfg.Input != "" {
		loaded, err := chainfile.Read[string](cfg.Input)
		metrics.RecordSnapshotRead(err)
		if err != nil {
			return nil, "", err
		}
		root, source = loaded, "snapshot"
	}

	values := args
	if len(values) == 0 && root == nil {
		values, source = cfg.Values, "config"
	}

	pushed := 0
	for _, v := range values {
		if root == nil {
			root = chain.New(v)
			continue
		}
		root.Push(v)
		pushed++
	}
	metrics.RecordPushes(pushed)

	if root == nil {
		return nil, "", errNoValues
	}
	return root, source, nil
}
