package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/textlerp"
	"github.com/gogpu/textlerp/recording"
	"github.com/gogpu/textlerp/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewCanvas(0, 0)
	})
}

// Canvas is a drawing surface that fills glyph outlines into an RGBA image.
// It implements textlerp.Canvas and recording.Backend.
//
// Only fonts produced by the text package can be drawn; glyphs of other
// fonts, and glyphs without an outline, are skipped with a warning.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	cfg   config
	img   *image.RGBA
	x, y  float64
	stack []point

	rast     vector.Rasterizer
	outlines *text.Cache[outlineKey, outlineEntry]
}

type point struct {
	x, y float64
}

type outlineKey struct {
	font  textlerp.FontKey
	glyph textlerp.GlyphID
}

type outlineEntry struct {
	outline font.GlyphOutline
	ok      bool
}

var (
	_ textlerp.Canvas        = (*Canvas)(nil)
	_ recording.FileBackend  = (*Canvas)(nil)
	_ recording.ImageBackend = (*Canvas)(nil)
)

// NewCanvas creates a canvas of the given size filled with the background.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Canvas{
		cfg: cfg,
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	if cfg.cacheSize > 0 {
		c.outlines = text.NewCache[outlineKey, outlineEntry](cfg.cacheSize)
	}
	c.Clear()
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the image with the background color and resets the translation.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.cfg.background), image.Point{}, draw.Src)
	c.x, c.y = 0, 0
	c.stack = c.stack[:0]
}

// Begin implements recording.Backend. It resizes the image when needed and
// clears it; background becomes the canvas background.
func (c *Canvas) Begin(width, height int, background textlerp.Color) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	if width != c.Width() || height != c.Height() {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	c.cfg.background = background
	c.Clear()
	return nil
}

// End implements recording.Backend.
func (c *Canvas) End() error { return nil }

// Save pushes the current translation.
func (c *Canvas) Save() {
	c.stack = append(c.stack, point{c.x, c.y})
}

// Restore pops the translation saved by the matching Save.
// If the stack is empty, this is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	p := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.x, c.y = p.x, p.y
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.x += dx
	c.y += dy
}

// DrawGlyphs fills the outlines of the glyphs at their positions, scaled to
// style.Size and painted with style.Color.
func (c *Canvas) DrawGlyphs(glyphs []textlerp.GlyphID, positions []float64, f textlerp.Font, style textlerp.Style) {
	tf, ok := f.(*text.Font)
	if !ok {
		textlerp.Logger().Warn("raster: cannot draw font", "font", f)
		return
	}
	if style.Color.A() == 0 || style.Size <= 0 {
		return
	}
	src := image.NewUniform(style.Color)
	scale := style.Size / tf.Source().Upem()

	var face *font.Face
	for i, gid := range glyphs {
		o, ok := c.outline(tf, &face, gid)
		if !ok {
			textlerp.Logger().Warn("raster: missing glyph outline", "font", tf, "glyph", gid)
			continue
		}
		c.fill(o, c.x+positions[2*i], c.y+positions[2*i+1], scale, src)
	}
}

// outline returns the outline of gid, creating the font's face on the first
// cache miss of a DrawGlyphs call.
func (c *Canvas) outline(f *text.Font, face **font.Face, gid textlerp.GlyphID) (font.GlyphOutline, bool) {
	load := func() outlineEntry {
		if *face == nil {
			*face = f.Face()
		}
		o, err := text.FaceOutline(*face, gid)
		return outlineEntry{outline: o, ok: err == nil}
	}
	if c.outlines == nil {
		e := load()
		return e.outline, e.ok
	}
	e := c.outlines.GetOrCreate(outlineKey{f.Key(), gid}, load)
	return e.outline, e.ok
}

// fill rasterizes one outline with its origin at (ox, oy). Outline Y points
// up, canvas Y points down.
func (c *Canvas) fill(o font.GlyphOutline, ox, oy, scale float64, src image.Image) {
	if len(o.Segments) == 0 {
		return
	}
	r := outlineBounds(o, ox, oy, scale).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	dx, dy := float32(ox)-float32(r.Min.X), float32(oy)-float32(r.Min.Y)
	s := float32(scale)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return dx + p.X*s, dy - p.Y*s
	}

	c.rast.Reset(r.Dx(), r.Dy())
	c.rast.DrawOp = draw.Over
	started := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				c.rast.ClosePath()
			}
			c.rast.MoveTo(pt(seg.Args[0]))
			started = true
		case ot.SegmentOpLineTo:
			c.rast.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			c.rast.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			c.rast.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	c.rast.ClosePath()
	c.rast.Draw(c.img, r, src, image.Point{})
}

// outlineBounds returns the pixel rectangle covering the outline's control
// points.
func outlineBounds(o font.GlyphOutline, ox, oy, scale float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range o.Segments {
		for _, p := range o.Segments[i].ArgsSlice() {
			x := ox + float64(p.X)*scale
			y := oy - float64(p.Y)*scale
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// At returns the color of a pixel as a textlerp.Color.
func (c *Canvas) At(x, y int) textlerp.Color {
	return textlerp.FromColor(c.img.At(x, y))
}

// Encode writes the image as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the image to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SaveToFile implements recording.FileBackend.
func (c *Canvas) SaveToFile(path string) error {
	return c.SavePNG(path)
}
