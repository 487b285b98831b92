// Package output serializes engine results to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/desktop-tree/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer is where results are printed. Overridable for tests.
var Writer io.Writer = os.Stdout

// StateResult is the top-level output of the `state` command.
type StateResult struct {
	TS               int64                     `yaml:"ts"                json:"ts"`
	InteractiveNodes []model.TreeElementNode   `yaml:"interactive_nodes" json:"interactive_nodes"`
	InformativeNodes []model.TextElementNode   `yaml:"informative_nodes" json:"informative_nodes"`
	ScrollableNodes  []model.ScrollElementNode `yaml:"scrollable_nodes"  json:"scrollable_nodes"`
}

// AnnotateResult is the top-level output of the `annotate` command.
type AnnotateResult struct {
	Path             string                  `yaml:"path"              json:"path"`
	TS               int64                   `yaml:"ts"                json:"ts"`
	InteractiveNodes []model.TreeElementNode `yaml:"interactive_nodes" json:"interactive_nodes"`
}

// Print serializes v to the output writer in the current format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Writer)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
