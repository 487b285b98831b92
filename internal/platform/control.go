package platform

import (
	"image"

	"github.com/mj1618/desktop-tree/internal/model"
)

// ScrollInfo reports which axes a control's scroll pattern supports.
type ScrollInfo struct {
	Horizontal bool
	Vertical   bool
}

// Control is a handle to one node in the platform accessibility tree. It
// exposes exactly the queries the classifier needs; implementations adapt
// the real platform API or a test fixture.
//
// Every query can fail: accessibility APIs routinely error on stale or
// transient nodes. Callers fold failures into safe defaults rather than
// propagating them. A Control is only valid within the snapshot that
// obtained it and must never be cached across snapshots.
type Control interface {
	// Name is the control's accessible name or label.
	Name() (string, error)

	// ControlTypeName is the platform control type (e.g. "ButtonControl").
	ControlTypeName() (string, error)

	// LocalizedControlType is the human-readable, lowercase type label
	// (e.g. "list item", "link", "graphic").
	LocalizedControlType() (string, error)

	// ClassName is the native window class (e.g. "Popup", "Progman").
	ClassName() (string, error)

	// AcceleratorKey is the keyboard shortcut string, if any.
	AcceleratorKey() (string, error)

	// BoundingBox is the on-screen rectangle in pixel coordinates.
	BoundingBox() (model.BoundingBox, error)

	IsOffscreen() (bool, error)
	IsEnabled() (bool, error)

	// IsControlElement distinguishes real controls from structural-only
	// nodes.
	IsControlElement() (bool, error)

	IsKeyboardFocusable() (bool, error)

	// DefaultAction is the legacy accessibility default-action verb, or
	// empty when the pattern is unsupported.
	DefaultAction() (string, error)

	// ScrollInfo queries the scroll pattern. An error means the control
	// is not scrollable.
	ScrollInfo() (ScrollInfo, error)

	// Children returns the direct children in document order.
	Children() ([]Control, error)

	// FirstChild returns the first child, or nil when there is none.
	FirstChild() (Control, error)
}

// Desktop is the desktop-management collaborator: it supplies the tree
// root, per-app visibility and browser signals, and screenshots for the
// renderer.
type Desktop interface {
	// RootControl returns the accessibility root of the current desktop.
	RootControl() (Control, error)

	// IsAppVisible reports whether a top-level app window should be
	// traversed at all.
	IsAppVisible(app Control) bool

	// IsAppBrowser reports whether the app renders web content, which
	// relaxes interactivity rules and enables DOM correction.
	IsAppBrowser(app Control) bool

	// CaptureScreen captures the full desktop scaled by the given factor.
	CaptureScreen(scale float64) (image.Image, error)
}
