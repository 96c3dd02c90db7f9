package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leengari/listdiff/internal/aggregate"
	"github.com/leengari/listdiff/internal/config"
	"github.com/leengari/listdiff/internal/engine"
	"github.com/leengari/listdiff/internal/logging"
	"github.com/leengari/listdiff/internal/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one invocation and returns the process exit code.
// Results, diagnostics and logs all go to stderr.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("listdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: listdiff [flags] <input-file>")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "TOML config file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	seqURL := fs.String("seq-url", "", "Seq endpoint receiving logs (disabled when empty)")
	format := fs.String("format", "", "output format: text or json")
	malformed := fs.String("malformed", "", "malformed line policy: abort or skip")
	strict := fs.Bool("strict", false, "reject invalid numbers instead of reading them as 0")
	similarity := fs.String("similarity", "", "similarity strategy: hash or merge")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: expected exactly one input file")
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "seq-url":
			cfg.SeqURL = *seqURL
		case "format":
			cfg.Format = *format
		case "malformed":
			cfg.Malformed = *malformed
		case "strict":
			cfg.Strict = *strict
		case "similarity":
			cfg.Similarity = *similarity
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	baseLogger, closeFn := logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: cfg.SeqURL,
		Writer: stderr,
	})
	defer closeFn()

	run := engine.NewRun()
	logger := baseLogger.With("run_id", run.ID)
	slog.SetDefault(logger)

	opts := engine.Options{
		Parser: cfg.ParserOptions(),
		Logger: logger,
	}
	if cfg.Similarity == config.SimilarityMerge {
		opts.Similarity = aggregate.MergeSimilarity
	}

	eng := engine.New(opts)
	// lifecycle events carry their own run_id
	eng.AddObserver(engine.NewLoggingObserver(baseLogger))

	rep, err := eng.RunAs(run, path)
	if err != nil {
		logger.Error("run failed", "path", path, "error", err)
		return exitError
	}

	logger.Info("run completed",
		"rows", rep.Rows,
		"elapsed", rep.Elapsed,
	)

	if err := report.Print(stderr, rep, cfg.Format); err != nil {
		logger.Error("failed to print report", "error", err)
		return exitError
	}
	return exitOK
}
