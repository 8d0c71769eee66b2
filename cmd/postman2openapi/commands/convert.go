package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/postman2openapi"
	"github.com/erraggy/postman2openapi/assembler"
	"github.com/erraggy/postman2openapi/internal/cliutil"
	"github.com/erraggy/postman2openapi/internal/oascheck"
	"github.com/erraggy/postman2openapi/internal/pathutil"
	"github.com/erraggy/postman2openapi/oas"
	"github.com/erraggy/postman2openapi/postman"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Collection  string
	Environment string
	Output      string
	Concurrency int
	Timeout     time.Duration
	Validate    bool
	Verbose     bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	concurrency := cliutil.EnvInt(EnvConcurrency, 0)
	timeout := cliutil.EnvDuration(EnvTimeout, postman.DefaultTimeout)

	fs.StringVar(&flags.Collection, "pc", "", "Postman collection file (required)")
	fs.StringVar(&flags.Collection, "postman-collection", "", "Postman collection file (required)")
	fs.StringVar(&flags.Environment, "pe", "", "Postman environment file")
	fs.StringVar(&flags.Environment, "postman-environment", "", "Postman environment file")
	fs.StringVar(&flags.Output, "o", "", "output YAML file path (required)")
	fs.StringVar(&flags.Output, "output", "", "output YAML file path (required)")
	fs.IntVar(&flags.Concurrency, "concurrency", concurrency, "maximum live calls in flight, 0 for unbounded (env "+EnvConcurrency+")")
	fs.DurationVar(&flags.Timeout, "timeout", timeout, "timeout for each live call (env "+EnvTimeout+")")
	fs.BoolVar(&flags.Validate, "validate", false, "check the generated document with an OpenAPI validator and log problems")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2openapi [convert] -pc <collection> [-pe <environment>] -o <output> [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate an OpenAPI 3.0.2 document from a Postman collection.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  postman2openapi -pc orders.postman_collection.json -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  postman2openapi -pc orders.postman_collection.json -pe dev.postman_environment.json -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  postman2openapi convert --concurrency 4 --validate -pc orders.json -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Every request in the collection is sent to its server to capture a response\n")
		cliutil.Writef(fs.Output(), "  - Requests that cannot be replayed are logged and left out of the document\n")
		cliutil.Writef(fs.Output(), "  - The output file is written with 0600 permissions\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document written\n")
		cliutil.Writef(fs.Output(), "  1    Invalid flags, unreadable input or unwritable output\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("convert command takes no positional arguments, got %q", fs.Args())
	}
	if flags.Collection == "" {
		fs.Usage()
		return fmt.Errorf("collection is required (use -pc or --postman-collection)")
	}
	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output is required (use -o or --output)")
	}

	ctx, cancel := signalContext()
	defer cancel()

	return runConvert(ctx, flags, os.Stderr)
}

// runConvert imports, assembles and writes the document. Logs and the
// summary go to w.
func runConvert(ctx context.Context, flags *ConvertFlags, w io.Writer) error {
	output, err := pathutil.SanitizeOutputPath(flags.Output)
	if err != nil {
		return err
	}
	if err := pathutil.RejectInputOverwrite(output, flags.Collection, flags.Environment); err != nil {
		return err
	}

	logger := cliutil.NewConsoleLogger(w, flags.Verbose)
	logger.Debug("starting conversion",
		"version", postman2openapi.Version(),
		"collection", flags.Collection,
		"environment", flags.Environment,
		"concurrency", flags.Concurrency,
		"timeout", flags.Timeout)

	opts := []postman.Option{
		postman.WithCollectionFile(flags.Collection),
		postman.WithHTTPClient(&http.Client{Timeout: flags.Timeout}),
		postman.WithConcurrency(flags.Concurrency),
		postman.WithLogger(logger),
	}
	if flags.Environment != "" {
		opts = append(opts, postman.WithEnvironmentFile(flags.Environment))
	}

	startTime := time.Now()
	imported, err := postman.ImportWithOptions(ctx, opts...)
	if err != nil {
		return err
	}

	assembled := assembler.Assemble(imported.Name, imported.Endpoints, assembler.WithLogger(logger))
	if err := assembler.WriteFile(output, assembled.Document); err != nil {
		return err
	}

	if flags.Validate {
		checkDocument(ctx, output, logger)
	}

	totalTime := time.Since(startTime)
	cliutil.Writef(w, "\nOpenAPI document written to %s\n", flags.Output)
	cliutil.Writef(w, "Title: %s\n", imported.Name)
	cliutil.Writef(w, "Endpoints: %d\n", len(imported.Endpoints))
	cliutil.Writef(w, "Paths: %d\n", assembled.Stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", assembled.Stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", assembled.Stats.SchemaCount)
	cliutil.Writef(w, "Total Time: %v\n", totalTime.Round(time.Millisecond))

	if imported.HasFailures() {
		failures := make([]string, 0, len(imported.Failures))
		for _, f := range imported.Failures {
			failures = append(failures, fmt.Sprintf("%s: %v", f.Name, f.Err))
		}
		cliutil.WriteList(w, "Skipped", failures)
	}
	if assembled.HasWarnings() {
		cliutil.WriteList(w, "Warnings", assembled.Warnings)
	}
	return nil
}

// checkDocument re-reads the written document and logs validator findings.
// Findings never fail the command.
func checkDocument(ctx context.Context, path string, logger oas.Logger) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path was sanitized and just written by this command
	if err != nil {
		logger.Warn("cannot read document for validation", "error", err)
		return
	}
	problems := oascheck.Check(ctx, data)
	for _, p := range problems {
		logger.Warn("validation problem", "problem", p)
	}
	if len(problems) == 0 {
		logger.Info("document passed validation")
	}
}
