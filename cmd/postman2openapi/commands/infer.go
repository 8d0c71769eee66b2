package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/postman2openapi/inferrer"
	"github.com/erraggy/postman2openapi/internal/cliutil"
	"github.com/erraggy/postman2openapi/internal/fileutil"
	"github.com/erraggy/postman2openapi/internal/naming"
	"github.com/erraggy/postman2openapi/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// InferFlags contains flags for the infer command
type InferFlags struct {
	Name    string
	Output  string
	Verbose bool
}

// SetupInferFlags creates and configures a FlagSet for the infer command.
// Returns the FlagSet and an InferFlags struct with bound flag variables.
func SetupInferFlags() (*flag.FlagSet, *InferFlags) {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	flags := &InferFlags{}

	fs.StringVar(&flags.Name, "n", "", "root component name (required)")
	fs.StringVar(&flags.Name, "name", "", "root component name (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2openapi infer -n <name> [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Infer component schemas from a JSON example without any network access.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  postman2openapi infer -n PostCreateOrderRequest order.json\n")
		cliutil.Writef(fs.Output(), "  curl -s https://api.example.com/orders/1 | postman2openapi infer -n 'get order' -\n")
	}

	return fs, flags
}

// HandleInfer executes the infer command
func HandleInfer(args []string) error {
	fs, flags := SetupInferFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("infer command requires exactly one file path or '-' for stdin")
	}
	if flags.Name == "" {
		fs.Usage()
		return fmt.Errorf("name is required (use -n or --name)")
	}

	return runInfer(flags, fs.Arg(0), os.Stdin, os.Stdout, os.Stderr)
}

// runInfer reads the example from path (or in for "-"), writes the schemas
// as YAML to out or flags.Output and logs to errOut.
func runInfer(flags *InferFlags, path string, in io.Reader, out, errOut io.Writer) error {
	root := naming.Capitalize(flags.Name)
	if root == "" {
		return fmt.Errorf("name %q has no letters or digits", flags.Name)
	}

	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304: reading a user-named input file is the point
	}
	if err != nil {
		return fmt.Errorf("reading example: %w", err)
	}

	example, err := inferrer.ParseExample(data)
	if err != nil {
		return fmt.Errorf("parsing example: %w", err)
	}

	logger := cliutil.NewConsoleLogger(errOut, flags.Verbose)
	result := inferrer.Infer(root, example, inferrer.WithLogger(logger))
	if len(result.Schemas) == 0 {
		logger.Warn("example is empty, no schemas inferred", "component", root)
		return nil
	}

	yamlData, err := yaml.Marshal(result.Schemas)
	if err != nil {
		return fmt.Errorf("marshaling schemas: %w", err)
	}

	if flags.Output == "" {
		_, err = out.Write(yamlData)
		return err
	}

	output, err := pathutil.SanitizeOutputPath(flags.Output)
	if err != nil {
		return err
	}
	if err := pathutil.RejectInputOverwrite(output, path); err != nil {
		return err
	}
	if err := os.WriteFile(output, yamlData, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	logger.Info("schemas written", "path", flags.Output, "schemas", len(result.Schemas))
	return nil
}
