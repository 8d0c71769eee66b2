package assembler

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/postman2openapi/internal/fileutil"
	"github.com/erraggy/postman2openapi/oas"
	"go.yaml.in/yaml/v4"
)

// MarshalYAML serializes doc. Root keys keep the order of oas.Document's
// fields and multi-line string values are emitted in literal block style.
func MarshalYAML(doc *oas.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("assembler: nil document")
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("assembler: failed to marshal document: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("assembler: failed to re-read document: %w", err)
	}
	restyle(&node)

	data, err = yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("assembler: failed to marshal document: %w", err)
	}
	return data, nil
}

// restyle switches multi-line string values below n to literal style.
// Mapping keys are left alone.
func restyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
			n.Style = yaml.LiteralStyle
		}
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			restyle(n.Content[i])
		}
	default:
		for _, child := range n.Content {
			restyle(child)
		}
	}
}

// WriteFile serializes doc with MarshalYAML and writes it to path.
//
// The file is written with owner-only permissions (0600). If the file
// already exists its permissions are reset to 0600 after writing.
func WriteFile(path string, doc *oas.Document) error {
	data, err := MarshalYAML(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("assembler: failed to write output file: %w", err)
	}
	if err := os.Chmod(path, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("assembler: failed to set output file permissions: %w", err)
	}
	return nil
}
