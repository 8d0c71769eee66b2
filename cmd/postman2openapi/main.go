package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/postman2openapi"
	"github.com/erraggy/postman2openapi/cmd/postman2openapi/commands"
)

// knownCommands lists the subcommands offered as typo suggestions.
var knownCommands = []string{"convert", "infer", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	// Flags without a subcommand select convert.
	if strings.HasPrefix(command, "-") && !isTopLevelFlag(command) {
		command = "convert"
		args = os.Args[1:]
	}

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("postman2openapi v%s\n", postman2openapi.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(postman2openapi.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		err = commands.HandleConvert(args)
	case "infer":
		err = commands.HandleInfer(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTopLevelFlag(arg string) bool {
	switch arg {
	case "-v", "--version", "-h", "--help":
		return true
	}
	return false
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`postman2openapi - OpenAPI documents from Postman collections

Usage:
  postman2openapi [convert] -pc <collection> [-pe <environment>] -o <output> [flags]
  postman2openapi <command> [options]

Commands:
  convert     Replay a Postman collection and write an OpenAPI 3.0.2 YAML document (default)
  infer       Infer component schemas from a JSON example
  mcp         Run the MCP server over stdio
  version     Show version information (use --long for build details)
  help        Show this help message

Examples:
  postman2openapi -pc orders.postman_collection.json -o openapi.yaml
  postman2openapi -pc orders.postman_collection.json -pe dev.postman_environment.json -o openapi.yaml --validate
  postman2openapi infer -n PostCreateOrderRequest order.json

Run 'postman2openapi <command> --help' for more information on a command.`)
}
