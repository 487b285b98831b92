package tree

import (
	"errors"
	"image"
	"strings"

	"github.com/mj1618/desktop-tree/internal/model"
	"github.com/mj1618/desktop-tree/internal/platform"
)

var errQuery = errors.New("element is no longer available")

// fakeControl implements platform.Control for tests. Zero values describe
// an enabled, on-screen, non-focusable control element with no children;
// err flags make individual queries fail.
type fakeControl struct {
	name          string
	controlType   string
	localizedType string
	className     string
	accelerator   string
	box           model.BoundingBox
	offscreen     bool
	disabled      bool
	structural    bool // true = not a control element
	focusable     bool
	defaultAction string
	scroll        *platform.ScrollInfo // nil = pattern unsupported

	enabledErr   bool
	offscreenErr bool
	boxErr       bool
	childrenErr  bool
	firstErr     bool

	children []*fakeControl
}

func (f *fakeControl) Name() (string, error)                 { return f.name, nil }
func (f *fakeControl) ControlTypeName() (string, error)      { return f.controlType, nil }
func (f *fakeControl) LocalizedControlType() (string, error) { return f.localizedType, nil }
func (f *fakeControl) ClassName() (string, error)            { return f.className, nil }
func (f *fakeControl) AcceleratorKey() (string, error)       { return f.accelerator, nil }

func (f *fakeControl) BoundingBox() (model.BoundingBox, error) {
	if f.boxErr {
		return model.BoundingBox{}, errQuery
	}
	return f.box, nil
}

func (f *fakeControl) IsOffscreen() (bool, error) {
	if f.offscreenErr {
		return false, errQuery
	}
	return f.offscreen, nil
}

func (f *fakeControl) IsEnabled() (bool, error) {
	if f.enabledErr {
		return false, errQuery
	}
	return !f.disabled, nil
}

func (f *fakeControl) IsControlElement() (bool, error) { return !f.structural, nil }

func (f *fakeControl) IsKeyboardFocusable() (bool, error) { return f.focusable, nil }

func (f *fakeControl) DefaultAction() (string, error) {
	if f.defaultAction == "" {
		return "", errQuery
	}
	return f.defaultAction, nil
}

func (f *fakeControl) ScrollInfo() (platform.ScrollInfo, error) {
	if f.scroll == nil {
		return platform.ScrollInfo{}, errQuery
	}
	return *f.scroll, nil
}

func (f *fakeControl) Children() ([]platform.Control, error) {
	if f.childrenErr {
		return nil, errQuery
	}
	out := make([]platform.Control, len(f.children))
	for i, c := range f.children {
		out[i] = c
	}
	return out, nil
}

func (f *fakeControl) FirstChild() (platform.Control, error) {
	if f.firstErr {
		return nil, errQuery
	}
	if len(f.children) == 0 {
		return nil, nil
	}
	return f.children[0], nil
}

func box(left, top, right, bottom int) model.BoundingBox {
	return model.NewBoundingBox(left, top, right, bottom)
}

func button(name string, bb model.BoundingBox) *fakeControl {
	return &fakeControl{name: name, controlType: "ButtonControl", localizedType: "button", box: bb}
}

func textNode(name string, bb model.BoundingBox) *fakeControl {
	return &fakeControl{name: name, controlType: "TextControl", localizedType: "text", box: bb}
}

func app(name string, children ...*fakeControl) *fakeControl {
	return &fakeControl{
		name:          name,
		controlType:   "WindowControl",
		localizedType: "window",
		box:           box(0, 0, 1920, 1080),
		children:      children,
	}
}

// fakeDesktop implements platform.Desktop over a fixture tree.
type fakeDesktop struct {
	root      *fakeControl
	rootErr   bool
	browsers  map[string]bool
	invisible map[string]bool
	shot      image.Image
	shotErr   bool
}

func (d *fakeDesktop) RootControl() (platform.Control, error) {
	if d.rootErr {
		return nil, errQuery
	}
	return d.root, nil
}

func (d *fakeDesktop) IsAppVisible(appCtrl platform.Control) bool {
	name, _ := appCtrl.Name()
	return !d.invisible[strings.TrimSpace(name)]
}

func (d *fakeDesktop) IsAppBrowser(appCtrl platform.Control) bool {
	name, _ := appCtrl.Name()
	return d.browsers[strings.TrimSpace(name)]
}

func (d *fakeDesktop) CaptureScreen(scale float64) (image.Image, error) {
	if d.shotErr {
		return nil, errQuery
	}
	if d.shot != nil {
		return d.shot, nil
	}
	return image.NewRGBA(image.Rect(0, 0, 192, 108)), nil
}
