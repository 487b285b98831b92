package model

import "testing"

func TestOrEmpty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Save", "Save"},
		{"  Save  ", "Save"},
		{"", "''"},
		{"   ", "''"},
	}
	for _, tt := range tests {
		if got := OrEmpty(tt.in); got != tt.want {
			t.Errorf("OrEmpty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTreeStateMerge(t *testing.T) {
	var merged TreeState
	merged.Merge(TreeState{
		InteractiveNodes: []TreeElementNode{{Name: "OK"}},
		InformativeNodes: []TextElementNode{{Name: "hello"}},
	})
	merged.Merge(TreeState{
		InteractiveNodes: []TreeElementNode{{Name: "Cancel"}},
		ScrollableNodes:  []ScrollElementNode{{Name: "pane", VerticalScrollable: true}},
	})

	if len(merged.InteractiveNodes) != 2 {
		t.Errorf("expected 2 interactive nodes, got %d", len(merged.InteractiveNodes))
	}
	if len(merged.InformativeNodes) != 1 || len(merged.ScrollableNodes) != 1 {
		t.Errorf("unexpected merge result: %+v", merged)
	}
	if merged.InteractiveNodes[0].Name != "OK" || merged.InteractiveNodes[1].Name != "Cancel" {
		t.Error("merge must append in call order")
	}
}
