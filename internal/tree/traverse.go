package tree

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/mj1618/desktop-tree/internal/config"
	"github.com/mj1618/desktop-tree/internal/model"
	"github.com/mj1618/desktop-tree/internal/platform"
)

// walker performs the depth-first walk of one application's subtree. Each
// walker owns its own node lists and random source, so per-app walks run
// in parallel without locking.
type walker struct {
	classify Classifier
	cfg      config.Config
	rng      *rand.Rand
	browser  bool
	appName  string
	state    model.TreeState
}

func newWalker(cfg config.Config, rng *rand.Rand, browser bool) *walker {
	return &walker{
		classify: Classifier{AreaThreshold: cfg.AreaThreshold},
		cfg:      cfg,
		rng:      rng,
		browser:  browser,
	}
}

// run walks one top-level application and returns its classified nodes.
// A child-enumeration failure aborts the whole app; the orchestrator
// decides what to do with the partial desktop.
func (w *walker) run(app platform.Control) (model.TreeState, error) {
	name, _ := app.Name()
	w.appName = strings.TrimSpace(name)
	if class, err := app.ClassName(); err == nil && class == desktopClassName {
		w.appName = "Desktop"
	}
	if err := w.visit(app); err != nil {
		return model.TreeState{}, err
	}
	return w.state, nil
}

// visit classifies one node and recurses into its children. Predicates run
// in fixed priority order and classification is mutually exclusive: the
// first match wins. A node's own classification never prunes its subtree.
func (w *walker) visit(ctrl platform.Control) error {
	switch {
	case w.classify.Interactive(ctrl, w.browser):
		if w.emitInteractive(ctrl) && w.browser {
			w.domCorrection(ctrl)
		}
	case w.classify.Text(ctrl):
		name, _ := ctrl.Name()
		w.state.InformativeNodes = append(w.state.InformativeNodes, model.TextElementNode{
			Name:    model.OrEmpty(name),
			AppName: w.appName,
		})
	case w.classify.Scrollable(ctrl):
		w.emitScrollable(ctrl)
	}

	children, err := ctrl.Children()
	if err != nil {
		return fmt.Errorf("enumerate children of %q: %w", w.appName, err)
	}
	for _, child := range children {
		if w.skipChild(child) {
			continue
		}
		if err := w.visit(child); err != nil {
			return err
		}
	}
	return nil
}

// skipChild is the off-screen pruning rule: hidden chrome is dropped
// entirely, but editable fields and transient popups are walked even when
// reported off-screen.
func (w *walker) skipChild(child platform.Control) bool {
	offscreen, err := child.IsOffscreen()
	if err != nil || !offscreen {
		return false
	}
	if isControlType(child, editControlType) {
		return false
	}
	class, err := child.ClassName()
	if err == nil && class == popupClassName {
		return false
	}
	return true
}

// emitInteractive appends an actionable node with a sampled click point.
// Reports whether a node was actually appended.
func (w *walker) emitInteractive(ctrl platform.Control) bool {
	box, err := ctrl.BoundingBox()
	if err != nil {
		return false
	}
	name, _ := ctrl.Name()
	localized, _ := ctrl.LocalizedControlType()
	shortcut, _ := ctrl.AcceleratorKey()
	w.state.InteractiveNodes = append(w.state.InteractiveNodes, model.TreeElementNode{
		Name:        model.OrEmpty(name),
		ControlType: titleCase(localized),
		Shortcut:    model.OrEmpty(shortcut),
		BoundingBox: box,
		Center:      model.RandomPointWithin(w.rng, box, w.cfg.ControlShrink),
		AppName:     w.appName,
	})
	return true
}

// emitScrollable appends a scrollable container node.
func (w *walker) emitScrollable(ctrl platform.Control) {
	info, err := ctrl.ScrollInfo()
	if err != nil {
		return
	}
	box, err := ctrl.BoundingBox()
	if err != nil {
		return
	}
	localized, _ := ctrl.LocalizedControlType()
	name, _ := ctrl.Name()
	if strings.TrimSpace(name) == "" {
		name = capitalize(localized)
	}
	w.state.ScrollableNodes = append(w.state.ScrollableNodes, model.ScrollElementNode{
		Name:                 model.OrEmpty(name),
		AppName:              w.appName,
		ControlType:          titleCase(localized),
		BoundingBox:          box,
		Center:               model.RandomPointWithin(w.rng, box, w.cfg.ScrollShrink),
		HorizontalScrollable: info.Horizontal,
		VerticalScrollable:   info.Vertical,
	})
}

// domCorrection repairs browser accessibility artifacts immediately after
// an interactive node was appended. Rules are checked in order and at most
// one fires:
//
//  1. a list item (or item) wrapping a link duplicates the link itself,
//     so the wrapper is dropped;
//  2. an unnamed group hides an editable region, so it is replaced with a
//     synthesized edit node named after its deepest text descendant;
//  3. a link wrapping a heading points at the wrong geometry, so the
//     heading is emitted instead.
func (w *walker) domCorrection(ctrl platform.Control) {
	switch {
	case w.hasChildOfType(ctrl, "list item", "link"), w.hasChildOfType(ctrl, "item", "link"):
		w.popInteractive()

	case w.unnamedGroup(ctrl):
		w.popInteractive()
		if !w.classify.KeyboardFocusable(ctrl) {
			return
		}
		deepest := deepestDescendant(ctrl)
		if deepest == nil || !isControlType(deepest, textControlType) {
			return
		}
		box, err := ctrl.BoundingBox()
		if err != nil {
			return
		}
		name, _ := deepest.Name()
		shortcut, _ := ctrl.AcceleratorKey()
		w.state.InteractiveNodes = append(w.state.InteractiveNodes, model.TreeElementNode{
			Name:        model.OrEmpty(name),
			ControlType: "Edit",
			Shortcut:    model.OrEmpty(shortcut),
			BoundingBox: box,
			Center:      box.Center(),
			AppName:     w.appName,
		})

	case w.hasChildOfType(ctrl, "link", "heading"):
		w.popInteractive()
		child, err := ctrl.FirstChild()
		if err != nil || child == nil {
			return
		}
		box, err := child.BoundingBox()
		if err != nil {
			return
		}
		name, _ := child.Name()
		shortcut, _ := child.AcceleratorKey()
		w.state.InteractiveNodes = append(w.state.InteractiveNodes, model.TreeElementNode{
			Name:        model.OrEmpty(name),
			ControlType: "Link",
			Shortcut:    model.OrEmpty(shortcut),
			BoundingBox: box,
			Center:      box.Center(),
			AppName:     w.appName,
		})
	}
}

// popInteractive discards the most recently appended interactive node.
func (w *walker) popInteractive() {
	if n := len(w.state.InteractiveNodes); n > 0 {
		w.state.InteractiveNodes = w.state.InteractiveNodes[:n-1]
	}
}

// hasChildOfType reports whether the control has the given localized type
// and its first child has the given child type.
func (w *walker) hasChildOfType(ctrl platform.Control, localized, childLocalized string) bool {
	got, err := ctrl.LocalizedControlType()
	if err != nil || got != localized {
		return false
	}
	child, err := ctrl.FirstChild()
	if err != nil || child == nil {
		return false
	}
	childGot, err := child.LocalizedControlType()
	return err == nil && childGot == childLocalized
}

// unnamedGroup reports whether the control is a generic group with a blank
// name.
func (w *walker) unnamedGroup(ctrl platform.Control) bool {
	if !isControlType(ctrl, groupControlType) {
		return false
	}
	name, err := ctrl.Name()
	return err == nil && strings.TrimSpace(name) == ""
}

// deepestDescendant follows the single-child chain to its end. Any query
// failure along the chain returns nil.
func deepestDescendant(ctrl platform.Control) platform.Control {
	current := ctrl
	for {
		child, err := current.FirstChild()
		if err != nil {
			return nil
		}
		if child == nil {
			return current
		}
		current = child
	}
}

// capitalize upper-cases only the first letter, leaving the rest as-is.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
