package tree

// interactiveControlTypes are platform control types that accept clicks or
// keyboard input directly.
var interactiveControlTypes = map[string]bool{
	"ButtonControl":      true,
	"CheckBoxControl":    true,
	"ComboBoxControl":    true,
	"CustomControl":      true,
	"DataItemControl":    true,
	"DocumentControl":    true,
	"EditControl":        true,
	"HyperlinkControl":   true,
	"ImageControl":       true,
	"ListItemControl":    true,
	"MenuItemControl":    true,
	"RadioButtonControl": true,
	"SliderControl":      true,
	"SpinnerControl":     true,
	"SplitButtonControl": true,
	"TabItemControl":     true,
	"TreeItemControl":    true,
}

// informativeControlTypes carry readable content but no interaction.
var informativeControlTypes = map[string]bool{
	"TextControl": true,
}

// focusableControlTypes are always treated as keyboard-focusable, even
// when the platform reports otherwise. Some controls mis-report
// focusability while plainly accepting focus.
var focusableControlTypes = map[string]bool{
	"ButtonControl":      true,
	"CheckBoxControl":    true,
	"EditControl":        true,
	"RadioButtonControl": true,
	"TabItemControl":     true,
}

// defaultActions is the allow-list of legacy accessibility default-action
// verbs (title-cased) that mark a generic container as clickable.
var defaultActions = map[string]bool{
	"Check":        true,
	"Click":        true,
	"Collapse":     true,
	"Double Click": true,
	"Execute":      true,
	"Expand":       true,
	"Invoke":       true,
	"Jump":         true,
	"Open":         true,
	"Press":        true,
	"Select":       true,
	"Toggle":       true,
	"Uncheck":      true,
}

// Control types referenced by name in classification and pruning rules.
const (
	editControlType  = "EditControl"
	groupControlType = "GroupControl"
	textControlType  = "TextControl"
	imageControlType = "ImageControl"

	// popupClassName is the transient-popup window class that survives
	// off-screen pruning.
	popupClassName = "Popup"

	// desktopClassName is the shell window whose app name normalizes to
	// "Desktop".
	desktopClassName = "Progman"
)
