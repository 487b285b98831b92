package tree

import (
	"strings"
	"unicode"

	"github.com/mj1618/desktop-tree/internal/platform"
)

// Classifier answers what a single control is: visible, enabled,
// interactive, text, scrollable. All predicates are pure and
// side-effect-free, and any query failure from the underlying
// accessibility API folds to false rather than propagating.
type Classifier struct {
	// AreaThreshold is the minimum box area (exclusive) for visibility.
	AreaThreshold int
}

// Visible reports whether the control occupies real screen area. Editable
// text fields are evaluated even when reported off-screen, since some
// platforms mis-report their state; structural-only nodes are never
// visible.
func (c Classifier) Visible(ctrl platform.Control) bool {
	isControl, err := ctrl.IsControlElement()
	if err != nil || !isControl {
		return false
	}
	box, err := ctrl.BoundingBox()
	if err != nil || box.IsEmpty() {
		return false
	}
	if box.Area() <= c.AreaThreshold {
		return false
	}
	offscreen, err := ctrl.IsOffscreen()
	if err != nil {
		return false
	}
	if offscreen && !isControlType(ctrl, editControlType) {
		return false
	}
	return true
}

// Enabled reports the platform enabled flag; failure to query means false.
func (c Classifier) Enabled(ctrl platform.Control) bool {
	enabled, err := ctrl.IsEnabled()
	return err == nil && enabled
}

// HasDefaultAction reports whether the control exposes a legacy
// default-action verb from the allow-list. It is the secondary
// interactivity signal for generic containers.
func (c Classifier) HasDefaultAction(ctrl platform.Control) bool {
	action, err := ctrl.DefaultAction()
	if err != nil {
		return false
	}
	return defaultActions[titleCase(action)]
}

// ImageLike reports whether the control is an image that should be
// filtered out of interactivity: a generic "graphic" or an image that
// cannot take keyboard focus.
func (c Classifier) ImageLike(ctrl platform.Control) bool {
	if !isControlType(ctrl, imageControlType) {
		return false
	}
	localized, err := ctrl.LocalizedControlType()
	if err == nil && localized == "graphic" {
		return true
	}
	return !c.KeyboardFocusable(ctrl)
}

// KeyboardFocusable is true for the fixed allow-list of control types
// regardless of what the platform reports, otherwise it defers to the
// platform flag.
func (c Classifier) KeyboardFocusable(ctrl platform.Control) bool {
	name, err := ctrl.ControlTypeName()
	if err != nil {
		return false
	}
	if focusableControlTypes[name] {
		return true
	}
	focusable, err := ctrl.IsKeyboardFocusable()
	return err == nil && focusable
}

// Interactive reports whether the control is an actionable target. Generic
// group containers are only interactive via their default action, except
// in browser contexts where keyboard focusability also qualifies (many
// browser-rendered clickable regions are not natively focusable).
func (c Classifier) Interactive(ctrl platform.Control, inBrowser bool) bool {
	name, err := ctrl.ControlTypeName()
	if err != nil {
		return false
	}
	switch {
	case interactiveControlTypes[name]:
		return c.Visible(ctrl) && c.Enabled(ctrl) && !c.ImageLike(ctrl) && c.KeyboardFocusable(ctrl)
	case name == groupControlType && inBrowser:
		return c.Visible(ctrl) && c.Enabled(ctrl) && (c.HasDefaultAction(ctrl) || c.KeyboardFocusable(ctrl))
	case name == groupControlType:
		return c.Visible(ctrl) && c.Enabled(ctrl) && c.HasDefaultAction(ctrl)
	}
	return false
}

// Text reports whether the control is non-interactive readable content.
func (c Classifier) Text(ctrl platform.Control) bool {
	name, err := ctrl.ControlTypeName()
	if err != nil || !informativeControlTypes[name] {
		return false
	}
	return c.Visible(ctrl) && c.Enabled(ctrl) && !c.ImageLike(ctrl)
}

// Scrollable reports whether the control's scroll pattern supports either
// axis; an unsupported pattern means not scrollable. Boxless containers
// are rejected like every other classification.
func (c Classifier) Scrollable(ctrl platform.Control) bool {
	box, err := ctrl.BoundingBox()
	if err != nil || box.IsEmpty() {
		return false
	}
	info, err := ctrl.ScrollInfo()
	return err == nil && (info.Horizontal || info.Vertical)
}

// isControlType folds query failures into a non-match.
func isControlType(ctrl platform.Control, want string) bool {
	name, err := ctrl.ControlTypeName()
	return err == nil && name == want
}

// titleCase upper-cases the first letter of each space-separated word,
// matching how localized control types and action verbs are compared.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
