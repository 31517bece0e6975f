package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/curate"
	"github.com/fwojciec/curate/bloom"
	"github.com/fwojciec/curate/fs"
	"github.com/fwojciec/curate/goquery"
	"github.com/fwojciec/curate/htmltomarkdown"
	"github.com/fwojciec/curate/lingua"
	"github.com/fwojciec/curate/mimetype"
	curprom "github.com/fwojciec/curate/prometheus"
	"github.com/fwojciec/curate/readability"
	curslog "github.com/fwojciec/curate/slog"
	"github.com/fwojciec/curate/trafilatura"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" input.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("curate"),
		kong.Description("Extract and curate structured metadata from HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input files. Run 'curate --help' for usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if err := cli.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Sniffer: mimetype.NewSniffer(),
	}

	pipeline := curate.StandardPipeline(goquery.NewParser())
	if cli.Readable {
		var extractor curate.Extractor = readability.NewExtractor()
		if cli.Extractor == "trafilatura" {
			extractor = trafilatura.NewExtractor()
		}
		pipeline = curate.ExtendedPipeline(goquery.NewParser(), &curate.EnrichReadableContent{
			Extractor: curslog.NewLoggingExtractor(extractor, logger),
			Converter: htmltomarkdown.NewConverter(),
			Languages: lingua.NewDetector(),
		})
	}
	pipeline = curslog.Instrument(pipeline, logger)

	var registry *prometheus.Registry
	if cli.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		deps.Metrics = curprom.NewMetrics(registry)
		pipeline = curprom.Instrument(pipeline, deps.Metrics)
	}
	deps.Pipeline = pipeline

	if cli.Dedupe {
		deps.Dedupe = bloom.NewFilter(uint(max(len(cli.Files), 1000)), 1e-6)
	}

	if cli.Out != "" {
		out, err := filepath.Abs(cli.Out)
		if err != nil {
			return fmt.Errorf("invalid output directory: %w", err)
		}
		store := fs.NewFileStore(filepath.Dir(out), filepath.Base(out), cli.Format)
		deps.Store = curslog.NewLoggingRecordStore(store, logger)
	}

	cmd := &CurateCmd{
		Files:       cli.Files,
		ContentType: cli.ContentType,
		URI:         cli.URI,
		Concurrency: cli.Concurrency,
		Flatten:     cli.Flatten,
		Format:      cli.Format,
	}
	runErr := cmd.Run(deps)

	if registry != nil {
		if err := prometheus.WriteToTextfile(cli.MetricsFile, registry); err != nil {
			logger.Error("write metrics", "path", cli.MetricsFile, "err", err)
		}
	}

	return runErr
}
