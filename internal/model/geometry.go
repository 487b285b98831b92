package model

import "math/rand"

// BoundingBox is an axis-aligned screen rectangle in pixel coordinates.
type BoundingBox struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// NewBoundingBox builds a box from its edges, deriving width and height.
// Negative extents are clamped to zero so a degenerate box reads as empty
// rather than inverted.
func NewBoundingBox(left, top, right, bottom int) BoundingBox {
	w := right - left
	h := bottom - top
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom, Width: w, Height: h}
}

// Area returns width * height in square pixels.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// IsEmpty reports whether the box has no drawable area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Center returns the exact geometric center of the box.
func (b BoundingBox) Center() Center {
	return Center{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// Contains reports whether the point lies within [Left,Right]x[Top,Bottom].
func (b BoundingBox) Contains(c Center) bool {
	return c.X >= b.Left && c.X <= b.Right && c.Y >= b.Top && c.Y <= b.Bottom
}

// Shrink returns a box scaled by factor around the original center.
// A factor of 0.5 keeps the middle half in each dimension.
func (b BoundingBox) Shrink(factor float64) BoundingBox {
	if factor <= 0 || factor >= 1 {
		return b
	}
	w := int(float64(b.Width) * factor)
	h := int(float64(b.Height) * factor)
	cx, cy := b.Center().X, b.Center().Y
	return NewBoundingBox(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}

// Center is a click target point in screen pixels.
type Center struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// RandomPointWithin samples a point inside the box shrunk by the given
// factor. Sampling off the exact geometric center avoids borders that sit
// inside the rectangle but are not reliably clickable. The result always
// lies within the original box; a degenerate box yields its center.
func RandomPointWithin(rng *rand.Rand, box BoundingBox, shrink float64) Center {
	inner := box.Shrink(shrink)
	if inner.IsEmpty() {
		return box.Center()
	}
	return Center{
		X: inner.Left + rng.Intn(inner.Width+1),
		Y: inner.Top + rng.Intn(inner.Height+1),
	}
}
