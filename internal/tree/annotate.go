package tree

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"runtime"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/desktop-tree/internal/model"
)

// canvasPadding is the white border added around the screenshot so boxes
// and labels at the screen edge stay fully visible.
const canvasPadding = 20

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Annotator renders indexed, colored bounding boxes onto a screenshot for
// vision-grounded operation. Colors come from the injected random source,
// so a seeded source makes renders reproducible.
type Annotator struct {
	// Scale converts node bounding boxes (screen pixels) to screenshot
	// pixels. The screenshot itself is expected to be pre-scaled by the
	// same factor.
	Scale float64

	// Padding is the white border in pixels around the screenshot.
	Padding int

	rng *rand.Rand
}

// NewAnnotator creates an annotator with the standard padding.
func NewAnnotator(scale float64, rng *rand.Rand) *Annotator {
	return &Annotator{Scale: scale, Padding: canvasPadding, rng: rng}
}

// Render draws one uniquely colored rectangle and index label per node
// onto a padded copy of the screenshot. Per-node work runs on a worker
// pool; the shared canvas is guarded by a mutex per draw call, since
// concurrent unsynchronized writes to one raster are racy.
func (a *Annotator) Render(ctx context.Context, screenshot image.Image, nodes []model.TreeElementNode) (*image.RGBA, error) {
	shotBounds := screenshot.Bounds()
	width := shotBounds.Dx() + 2*a.Padding
	height := shotBounds.Dy() + 2*a.Padding

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas,
		image.Rect(a.Padding, a.Padding, a.Padding+shotBounds.Dx(), a.Padding+shotBounds.Dy()),
		screenshot, shotBounds.Min, draw.Src)

	// Colors are drawn from the random source sequentially, up front, so
	// node i always gets the same color regardless of worker scheduling.
	colors := make([]color.RGBA, len(nodes))
	for i := range colors {
		colors[i] = a.randomColor()
	}

	var canvasMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, node := range nodes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a.drawAnnotation(canvas, &canvasMu, i, node, colors[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return canvas, nil
}

// drawAnnotation draws one node's box and its index label at the box's
// top-right corner. Geometry and label metrics are computed outside the
// lock; only raster writes are serialized.
func (a *Annotator) drawAnnotation(canvas *image.RGBA, mu *sync.Mutex, index int, node model.TreeElementNode, col color.RGBA) {
	box := node.BoundingBox
	x1 := int(float64(box.Left)*a.Scale) + a.Padding
	y1 := int(float64(box.Top)*a.Scale) + a.Padding
	x2 := int(float64(box.Right)*a.Scale) + a.Padding
	y2 := int(float64(box.Bottom)*a.Scale) + a.Padding

	label := strconv.Itoa(index)
	labelW := len(label)*glyphWidth + 4
	labelH := glyphHeight + 4

	// Label background sits just above the box, flush with its right edge.
	lx2 := x2
	lx1 := lx2 - labelW
	ly2 := y1
	ly1 := ly2 - labelH

	mu.Lock()
	defer mu.Unlock()
	drawRectOutline(canvas, x1, y1, x2, y2, col, 2)
	fillRect(canvas, lx1, ly1, lx2, ly2, col)
	drawLabel(canvas, label, lx1+2, ly2-3, color.White)
}

// randomColor returns an opaque random color.
func (a *Annotator) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(a.rng.Intn(256)),
		G: uint8(a.rng.Intn(256)),
		B: uint8(a.rng.Intn(256)),
		A: 255,
	}
}

// drawRectOutline draws a rectangle outline of the given thickness,
// clamped to the image bounds.
func drawRectOutline(img *image.RGBA, x1, y1, x2, y2 int, c color.Color, thickness int) {
	for t := 0; t < thickness; t++ {
		drawRect(img, x1+t, y1+t, x2-t, y2-t, c)
	}
}

func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// fillRect fills a rectangle, clamped to the image bounds.
func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	draw.Draw(img, image.Rect(x1, y1, x2, y2), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawLabel draws text with (x, y) as the baseline origin.
func drawLabel(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}
