package text

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/textlerp"
)

// Font is one instance of a FontSource: the source plus a position on each
// of its variation axes. It implements textlerp.Font.
//
// Font values are immutable and interned by their source, so two instances
// with the same coordinates are the same pointer and share one Key.
type Font struct {
	source *FontSource
	coords []float32
	key    textlerp.FontKey
}

func newFont(s *FontSource, coords []float32) *Font {
	return &Font{
		source: s,
		coords: coords,
		key:    fontKey(s.id, coords),
	}
}

// fontKey derives the identity key from the source and the coordinates, so
// an instance that was evicted from the intern cache and created again keeps
// its key.
func fontKey(id uint64, coords []float32) textlerp.FontKey {
	buf := make([]byte, 0, 8+4*len(coords))
	buf = binary.LittleEndian.AppendUint64(buf, id)
	for _, c := range coords {
		if c == 0 {
			c = 0 // -0
		}
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
	}
	h := fnv.New64a()
	_, _ = h.Write(buf)
	return textlerp.FontKey(h.Sum64())
}

// Key implements textlerp.Font.
func (f *Font) Key() textlerp.FontKey {
	return f.key
}

// Source returns the font source of the instance.
func (f *Font) Source() *FontSource {
	return f.source
}

// Variations returns the axis values of the instance, one per axis.
func (f *Font) Variations() []textlerp.Variation {
	out := make([]textlerp.Variation, len(f.coords))
	for i, c := range f.coords {
		out[i] = textlerp.Variation{Tag: f.source.axes[i].Tag, Value: c}
	}
	return out
}

// Value returns the value of one axis.
func (f *Font) Value(tag string) (float32, bool) {
	i := f.source.axisIndex(tag)
	if i < 0 {
		return 0, false
	}
	return f.coords[i], true
}

// Face returns a go-text face with the instance's variations applied.
// Faces are not safe for concurrent use; every call returns a new one.
func (f *Font) Face() *font.Face {
	face := font.NewFace(f.source.font)
	if len(f.coords) == 0 {
		return face
	}
	vars := make([]font.Variation, len(f.coords))
	for i, c := range f.coords {
		vars[i] = font.Variation{Tag: ot.MustNewTag(f.source.axes[i].Tag), Value: c}
	}
	face.SetVariations(vars)
	return face
}

// Outline returns the outline of a glyph in font units, Y pointing up.
// Glyphs without outline data (bitmap or color glyphs, unknown IDs) yield
// ErrMissingGlyph.
func (f *Font) Outline(gid textlerp.GlyphID) (font.GlyphOutline, error) {
	return FaceOutline(f.Face(), gid)
}

// FaceOutline returns the outline of a glyph from a face obtained with
// Font.Face. Reuse one face to extract many outlines of the same instance.
func FaceOutline(face *font.Face, gid textlerp.GlyphID) (font.GlyphOutline, error) {
	if o, ok := face.GlyphData(font.GID(gid)).(font.GlyphOutline); ok {
		return o, nil
	}
	return font.GlyphOutline{}, ErrMissingGlyph
}

// String returns the font name followed by its axis values,
// e.g. "Roboto Flex wght=700 wdth=100".
func (f *Font) String() string {
	var b strings.Builder
	b.WriteString(f.source.name)
	for i, c := range f.coords {
		b.WriteByte(' ')
		b.WriteString(f.source.axes[i].Tag)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	return b.String()
}
