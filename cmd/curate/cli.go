package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/curate"
	"github.com/fwojciec/curate/bloom"
	curprom "github.com/fwojciec/curate/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Pipeline *curate.Pipeline
	Sniffer  curate.ContentSniffer

	// Optional
	Store   curate.RecordStore
	Dedupe  *bloom.Filter
	Metrics *curprom.Metrics
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files       []string `arg:"" name:"file" help:"HTML files to curate (- reads standard input)"`
	ContentType string   `short:"t" env:"CURATE_CONTENT_TYPE" help:"Content type of the inputs (sniffed when empty)"`
	URI         string   `short:"u" help:"URI recorded for the input (single input only)"`
	Readable    bool     `short:"r" env:"CURATE_READABLE" help:"Extract the readable article"`
	Extractor   string   `short:"e" env:"CURATE_EXTRACTOR" enum:"readability,trafilatura" default:"readability" help:"Readable article extractor (readability, trafilatura)"`
	Concurrency int      `short:"c" env:"CURATE_CONCURRENCY" default:"4" help:"Concurrent pipeline runs"`
	Dedupe      bool     `env:"CURATE_DEDUPE" negatable:"" help:"Skip inputs whose source repeats an earlier input"`
	Flatten     bool     `default:"true" negatable:"" help:"Expand JSON-LD arrays and @graph containers"`
	Format      string   `short:"f" env:"CURATE_FORMAT" enum:"json,yaml,text" default:"json" help:"Output format (json, yaml, text)"`
	Out         string   `short:"o" env:"CURATE_OUT" help:"Write records atomically to this directory instead of standard output"`
	MetricsFile string   `env:"CURATE_METRICS_FILE" help:"Write Prometheus metrics to this file"`
	Verbose     bool     `short:"v" env:"CURATE_VERBOSE" help:"Log every pipeline stage"`
}

// Validate checks flag combinations kong cannot express.
func (c *CLI) Validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("at least one input file is required")
	}
	if c.URI != "" && len(c.Files) > 1 {
		return fmt.Errorf("--uri requires a single input file")
	}
	if c.Out != "" && c.Format == "text" {
		return fmt.Errorf("--out requires json or yaml format")
	}
	return nil
}

// CurateCmd runs the pipeline over a batch of input files.
type CurateCmd struct {
	Files       []string
	ContentType string
	URI         string
	Concurrency int
	Flatten     bool
	Format      string
}
