package model

import (
	"math/rand"
	"testing"
)

func TestNewBoundingBox(t *testing.T) {
	b := NewBoundingBox(10, 20, 110, 70)
	if b.Width != 100 || b.Height != 50 {
		t.Errorf("expected 100x50, got %dx%d", b.Width, b.Height)
	}
	if b.Area() != 5000 {
		t.Errorf("expected area 5000, got %d", b.Area())
	}
	if b.IsEmpty() {
		t.Error("expected non-empty box")
	}
}

func TestNewBoundingBoxClampsInverted(t *testing.T) {
	b := NewBoundingBox(100, 100, 50, 50)
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("inverted box should clamp to zero, got %dx%d", b.Width, b.Height)
	}
	if !b.IsEmpty() {
		t.Error("expected empty box")
	}
}

func TestCenter(t *testing.T) {
	b := NewBoundingBox(0, 0, 100, 50)
	c := b.Center()
	if c.X != 50 || c.Y != 25 {
		t.Errorf("expected (50,25), got (%d,%d)", c.X, c.Y)
	}
	if !b.Contains(c) {
		t.Error("center must lie within its box")
	}
}

func TestContains(t *testing.T) {
	b := NewBoundingBox(10, 10, 20, 20)
	tests := []struct {
		name string
		c    Center
		want bool
	}{
		{"inside", Center{X: 15, Y: 15}, true},
		{"on_edge", Center{X: 10, Y: 20}, true},
		{"left_of", Center{X: 9, Y: 15}, false},
		{"below", Center{X: 15, Y: 21}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.c); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestShrink(t *testing.T) {
	b := NewBoundingBox(0, 0, 100, 100)
	inner := b.Shrink(0.5)
	if inner.Width != 50 || inner.Height != 50 {
		t.Errorf("expected 50x50, got %dx%d", inner.Width, inner.Height)
	}
	if inner.Left < b.Left || inner.Right > b.Right || inner.Top < b.Top || inner.Bottom > b.Bottom {
		t.Errorf("shrunk box %+v escapes original %+v", inner, b)
	}
	// Out-of-range factors leave the box unchanged.
	if b.Shrink(0) != b || b.Shrink(1.5) != b {
		t.Error("expected identity for out-of-range factors")
	}
}

func TestRandomPointWithinStaysInsideBox(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	boxes := []BoundingBox{
		NewBoundingBox(0, 0, 100, 40),
		NewBoundingBox(-50, -20, 30, 10),
		NewBoundingBox(500, 500, 501, 501),
	}
	for _, b := range boxes {
		for i := 0; i < 200; i++ {
			for _, shrink := range []float64{0.5, 0.8} {
				p := RandomPointWithin(rng, b, shrink)
				if !b.Contains(p) {
					t.Fatalf("point %+v outside box %+v (shrink %v)", p, b, shrink)
				}
			}
		}
	}
}

func TestRandomPointWithinDegenerateBox(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBoundingBox(10, 10, 11, 11)
	p := RandomPointWithin(rng, b, 0.5)
	if p != b.Center() {
		t.Errorf("degenerate inner box should yield the center, got %+v", p)
	}
}

func TestRandomPointWithinDeterministicForSeed(t *testing.T) {
	b := NewBoundingBox(0, 0, 300, 200)
	first := RandomPointWithin(rand.New(rand.NewSource(9)), b, 0.5)
	second := RandomPointWithin(rand.New(rand.NewSource(9)), b, 0.5)
	if first != second {
		t.Errorf("same seed should sample the same point: %+v vs %+v", first, second)
	}
}
