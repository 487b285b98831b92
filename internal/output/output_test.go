package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/desktop-tree/internal/model"
)

func captureOutput(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	oldWriter, oldFormat, oldPretty := Writer, OutputFormat, PrettyOutput
	Writer, OutputFormat, PrettyOutput = &buf, format, pretty
	defer func() { Writer, OutputFormat, PrettyOutput = oldWriter, oldFormat, oldPretty }()

	if err := Print(v); err != nil {
		t.Fatalf("Print: %v", err)
	}
	return buf.String()
}

func sampleResult() StateResult {
	return StateResult{
		TS: 1700000000,
		InteractiveNodes: []model.TreeElementNode{{
			Name:        "OK",
			ControlType: "Button",
			Shortcut:    "''",
			BoundingBox: model.NewBoundingBox(0, 0, 100, 30),
			Center:      model.Center{X: 50, Y: 15},
			AppName:     "Notepad",
		}},
		InformativeNodes: []model.TextElementNode{{Name: "Ready", AppName: "Notepad"}},
	}
}

func TestPrintYAML(t *testing.T) {
	out := captureOutput(t, FormatYAML, false, sampleResult())
	for _, want := range []string{"interactive_nodes:", "control_type: Button", "app_name: Notepad"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, FormatJSON, false, sampleResult())
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Error("compact JSON should be a single line")
	}
	var decoded StateResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.InteractiveNodes[0].Center.X != 50 {
		t.Errorf("round-trip lost center: %+v", decoded.InteractiveNodes[0])
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := captureOutput(t, FormatJSON, true, sampleResult())
	if !strings.Contains(out, "\n  ") {
		t.Error("pretty JSON should be indented")
	}
}

func TestPrintUnsupportedFormat(t *testing.T) {
	oldFormat := OutputFormat
	OutputFormat = Format("xml")
	defer func() { OutputFormat = oldFormat }()
	if err := Print(sampleResult()); err == nil {
		t.Error("expected error for unsupported format")
	}
}
