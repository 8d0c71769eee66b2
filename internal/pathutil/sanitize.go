package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// RejectInputOverwrite returns an error if output resolves to any of inputs.
// Empty inputs are ignored.
func RejectInputOverwrite(output string, inputs ...string) error {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}
	for _, input := range inputs {
		if input == "" {
			continue
		}
		absInput, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("pathutil: cannot resolve input path %s: %w", input, err)
		}
		if absOutput == absInput {
			return fmt.Errorf("pathutil: output file %s would overwrite input file %s", output, input)
		}
	}
	return nil
}
