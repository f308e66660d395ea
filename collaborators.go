package textlerp

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction is the paragraph direction of a line.
type Direction int

const (
	// DirectionLTR is a left-to-right paragraph.
	DirectionLTR Direction = iota
	// DirectionRTL is a right-to-left paragraph.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// GlyphID is the glyph index in a font.
type GlyphID uint32

// FontKey identifies a font instance. Two fonts with the same key are the
// same renderable font; the interpolator never compares fonts any other way.
type FontKey uint64

// Font is an opaque handle to a renderable font instance, produced by a
// Shaper or a FontBlender.
type Font interface {
	// Key returns the identity of the font instance.
	Key() FontKey
}

// sameFont reports whether a and b are the same font instance.
func sameFont(a, b Font) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// FontBlender is the font blending primitive.
type FontBlender interface {
	// Lerp returns the font at progress t between a and b.
	// Lerp is only called with fonts for which CanInterpolate reported true.
	Lerp(a, b Font, t float64) Font

	// CanInterpolate reports whether a meaningful intermediate font exists
	// between a and b.
	CanInterpolate(a, b Font) bool
}

// ShapedGlyph is one positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// ID is the glyph index in Font.
	ID GlyphID

	// X and Y are the glyph position relative to the line's draw origin.
	X, Y float64

	// Font is the font the glyph is rendered with.
	Font Font
}

// ShapedRun is the shaping result of one text line.
type ShapedRun struct {
	// Glyphs in visual order.
	Glyphs []ShapedGlyph

	// Advance is the total advance of the run.
	Advance float64
}

// GlyphCount returns the number of glyphs in the run.
func (r *ShapedRun) GlyphCount() int {
	return len(r.Glyphs)
}

// ShapeRequest describes one shaping call.
type ShapeRequest struct {
	// Text is the full text of the layout. Only Text[Start:End] is shaped.
	Text []rune

	// Start and End delimit the shaped range.
	Start, End int

	// ContextStart and ContextEnd delimit the text visible to the shaper
	// for contextual forms.
	ContextStart, ContextEnd int

	// OriginX and OriginY offset every glyph position.
	OriginX, OriginY float64

	// RTL requests right-to-left shaping.
	RTL bool

	// Style is the style to shape with.
	Style Style
}

// Shaper converts a text range and a style into positioned glyphs.
// Errors returned by the shaper are propagated to the caller untouched.
type Shaper interface {
	Shape(req ShapeRequest) (ShapedRun, error)
}

// Layout provides the line structure of the text being interpolated.
// Only plain text is supported; any styling carried by the layout is ignored.
type Layout interface {
	// Text returns the full text.
	Text() []rune

	// LineCount returns the number of lines.
	LineCount() int

	// LineStart and LineEnd return the rune range of a line.
	LineStart(line int) int
	LineEnd(line int) int

	// ParagraphDirection returns the direction of the paragraph containing the line.
	ParagraphDirection(line int) Direction

	// LineLeft and LineRight return the horizontal edges of a line.
	LineLeft(line int) float64
	LineRight(line int) float64

	// LineBaseline returns the baseline Y coordinate of a line.
	LineBaseline(line int) float64
}

// drawOrigin returns the X coordinate glyph positions of a line are relative to.
func drawOrigin(l Layout, line int) float64 {
	if l.ParagraphDirection(line) == DirectionLTR {
		return l.LineLeft(line)
	}
	return l.LineRight(line)
}

// Canvas is the drawing surface.
//
// DrawGlyphs receives glyph IDs and their positions as interleaved x, y
// pairs (len(positions) == 2*len(glyphs)). Both slices are only valid for
// the duration of the call; implementations that keep them must copy.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	DrawGlyphs(glyphs []GlyphID, positions []float64, font Font, style Style)
}
