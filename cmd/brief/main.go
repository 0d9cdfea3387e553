package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Topic         string
	Save          string
	OutputDir     string
	Format        string
	Provider      string
	Model         string
	BaseURL       string
	Temperature   float64
	MaxTokens     int64
	Timeout       time.Duration
	Retries       uint
	SummaryInputs string
	EnvFile       string
	ConfigDir     string
	Batch         string
	Concurrency   int
	Verbose       bool
	ServeMCP      bool
	Version       bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

// version is set by goreleaser at build time.
var version = "dev"

// streams are the standard streams the command talks to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, std streams) error {
	if len(args) > 0 && args[0] == "list" {
		return runList(args[1:], std)
	}

	flags, err := parseFlags(args, std.err)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Version {
		fmt.Fprintln(std.out, version)
		return nil
	}

	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}
	// Missing credentials are fatal before any stage runs.
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := newLogger(std.err, settings.Verbose)

	pipeline, err := buildPipeline(settings, logger)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	switch {
	case flags.ServeMCP:
		return runServe(ctx, pipeline, settings, logger)
	case flags.Batch != "":
		return runBatch(ctx, pipeline, settings, flags, std)
	default:
		return runInteractive(ctx, pipeline, settings, flags, std)
	}
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	flags := &cliFlags{set: map[string]bool{}}

	fs := flag.NewFlagSet("brief", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.Topic, "topic", "", "research topic (prompted for when empty)")
	fs.StringVar(&flags.Save, "save", "", "save the full report without asking: yes or no")
	fs.StringVar(&flags.OutputDir, "output", "", "directory for saved reports")
	fs.StringVar(&flags.Format, "format", "", "report file format: text, json or markdown")
	fs.StringVar(&flags.Provider, "provider", "", "text-generation provider: openai or anthropic")
	fs.StringVar(&flags.Model, "model", "", "model name")
	fs.StringVar(&flags.BaseURL, "base-url", "", "override the provider API base URL")
	fs.Float64Var(&flags.Temperature, "temperature", 0, "sampling temperature")
	fs.Int64Var(&flags.MaxTokens, "max-tokens", 0, "maximum tokens per completion")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "timeout for each model call")
	fs.UintVar(&flags.Retries, "retries", 0, "attempts per model call (0 or 1 disables retry)")
	fs.StringVar(&flags.SummaryInputs, "summary-inputs", "", "summary stage inputs: analysis or research+analysis")
	fs.StringVar(&flags.EnvFile, "env-file", "", "path to a .env file")
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory containing brief.yml")
	fs.StringVar(&flags.Batch, "batch", "", "file with one topic per line to research without prompting")
	fs.IntVar(&flags.Concurrency, "concurrency", 2, "topics researched at once in batch mode")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	return flags, nil
}
