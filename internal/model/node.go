package model

import "strings"

// Empty is the explicit marker used where a node exposes no name or
// shortcut. Agents see a stable token instead of a blank field.
const Empty = "''"

// OrEmpty trims s and substitutes the Empty marker when nothing remains.
func OrEmpty(s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return Empty
}

// TreeElementNode is one actionable UI control: one node, one click or
// type target.
type TreeElementNode struct {
	Name        string      `yaml:"name"         json:"name"`
	ControlType string      `yaml:"control_type" json:"control_type"`
	Shortcut    string      `yaml:"shortcut"     json:"shortcut"`
	BoundingBox BoundingBox `yaml:"bounding_box" json:"bounding_box"`
	Center      Center      `yaml:"center"       json:"center"`
	AppName     string      `yaml:"app_name"     json:"app_name"`
}

// TextElementNode is non-interactive readable content. No geometry is
// retained; the node is informative only.
type TextElementNode struct {
	Name    string `yaml:"name"     json:"name"`
	AppName string `yaml:"app_name" json:"app_name"`
}

// ScrollElementNode is a scrollable container. At least one of the two
// scroll flags is true.
type ScrollElementNode struct {
	Name                 string      `yaml:"name"                  json:"name"`
	AppName              string      `yaml:"app_name"              json:"app_name"`
	ControlType          string      `yaml:"control_type"          json:"control_type"`
	BoundingBox          BoundingBox `yaml:"bounding_box"          json:"bounding_box"`
	Center               Center      `yaml:"center"                json:"center"`
	HorizontalScrollable bool        `yaml:"horizontal_scrollable" json:"horizontal_scrollable"`
	VerticalScrollable   bool        `yaml:"vertical_scrollable"   json:"vertical_scrollable"`
}

// TreeState is one full desktop snapshot. It is produced fresh on every
// call; indices into its slices are the only stable references within one
// snapshot, and no identity persists across snapshots.
//
// Within one app the node order is pre-order depth-first; across apps the
// order follows worker completion and must not be relied on.
type TreeState struct {
	InteractiveNodes []TreeElementNode   `yaml:"interactive_nodes" json:"interactive_nodes"`
	InformativeNodes []TextElementNode   `yaml:"informative_nodes" json:"informative_nodes"`
	ScrollableNodes  []ScrollElementNode `yaml:"scrollable_nodes"  json:"scrollable_nodes"`
}

// Merge appends all of other's nodes onto s.
func (s *TreeState) Merge(other TreeState) {
	s.InteractiveNodes = append(s.InteractiveNodes, other.InteractiveNodes...)
	s.InformativeNodes = append(s.InformativeNodes, other.InformativeNodes...)
	s.ScrollableNodes = append(s.ScrollableNodes, other.ScrollableNodes...)
}
