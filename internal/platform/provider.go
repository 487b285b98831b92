package platform

import (
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms with no registered backend.
var ErrUnsupported = fmt.Errorf("desktop-tree has no accessibility backend for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewDesktopFunc is set by platform-specific packages via init().
var NewDesktopFunc func() (Desktop, error)

// NewDesktop returns the Desktop backend for the current OS.
func NewDesktop() (Desktop, error) {
	if NewDesktopFunc == nil {
		return nil, ErrUnsupported
	}
	return NewDesktopFunc()
}
