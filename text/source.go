package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/textlerp"
)

// sourceIDs numbers font sources so that font keys differ across sources.
var sourceIDs atomic.Uint64

// Axis is a variation axis of a font.
type Axis struct {
	Tag     string
	Min     float32
	Default float32
	Max     float32
}

// FontSource represents a loaded font file.
// One FontSource creates any number of Font instances, one per position in
// its variation space.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	id   uint64
	name string
	font *font.Font
	upem float64
	axes []Axis

	// instances interns Font values by design coordinates.
	instances *Cache[string, *Font]

	coverage *coverageMap
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	buf := bytes.Clone(data)
	ld, err := ot.NewLoader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	f, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}

	s := &FontSource{
		id:        sourceIDs.Add(1),
		name:      config.name,
		font:      f,
		upem:      float64(f.Upem()),
		axes:      readAxes(ld),
		instances: NewCache[string, *Font](config.instanceLimit),
		coverage:  newCoverageMap(),
	}
	s.addr = s
	if s.name == "" {
		s.name = f.Describe().Family
	}
	if s.name == "" {
		s.name = "Unknown Font"
	}

	textlerp.Logger().Debug("text: font source loaded", "name", s.name, "axes", len(s.axes))
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// readAxes returns the axes of the font's fvar table, or nil for a static font.
func readAxes(ld *ot.Loader) []Axis {
	raw, err := ld.RawTable(ot.MustNewTag("fvar"))
	if err != nil {
		return nil
	}
	fv, _, err := tables.ParseFvar(raw)
	if err != nil {
		textlerp.Logger().Warn("text: ignoring malformed fvar table", "err", err)
		return nil
	}
	axes := make([]Axis, len(fv.Axis))
	for i, a := range fv.Axis {
		axes[i] = Axis{Tag: a.Tag.String(), Min: a.Minimum, Default: a.Default, Max: a.Maximum}
	}
	return axes
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// ID returns a number unique to this source within the process.
func (s *FontSource) ID() uint64 {
	s.copyCheck()
	return s.id
}

// Upem returns the font's units per em.
func (s *FontSource) Upem() float64 {
	s.copyCheck()
	return s.upem
}

// Axes returns the variation axes of the font. Static fonts have none.
func (s *FontSource) Axes() []Axis {
	s.copyCheck()
	return append([]Axis(nil), s.axes...)
}

// axisIndex returns the index of the axis with the given tag, or -1.
func (s *FontSource) axisIndex(tag string) int {
	for i, a := range s.axes {
		if a.Tag == tag {
			return i
		}
	}
	return -1
}

// Covers reports whether the font maps r to a glyph.
func (s *FontSource) Covers(r rune) bool {
	s.copyCheck()
	return s.coverage.lookup(r, func(r rune) bool {
		_, ok := s.font.NominalGlyph(r)
		return ok
	})
}

// Default returns the font instance at the default axis values.
func (s *FontSource) Default() *Font {
	s.copyCheck()
	return s.intern(s.defaultCoords())
}

// Font returns the font instance for the given variation settings.
// Axes not mentioned keep their default value; values outside an axis range
// are clamped. A variation naming an axis the font does not have yields an
// *AxisError.
//
// Equal settings return the same *Font.
func (s *FontSource) Font(vars ...textlerp.Variation) (*Font, error) {
	s.copyCheck()
	coords := s.defaultCoords()
	for _, v := range vars {
		i := s.axisIndex(v.Tag)
		if i < 0 {
			return nil, &AxisError{Font: s.name, Tag: v.Tag}
		}
		coords[i] = s.clamp(i, v.Value)
	}
	return s.intern(coords), nil
}

// fontFor is the lenient form of Font used while shaping: variations for
// axes the font lacks are dropped, so one style can drive a variable primary
// font and static fallback fonts alike.
func (s *FontSource) fontFor(vars []textlerp.Variation) *Font {
	coords := s.defaultCoords()
	for _, v := range vars {
		if i := s.axisIndex(v.Tag); i >= 0 {
			coords[i] = s.clamp(i, v.Value)
		}
	}
	return s.intern(coords)
}

func (s *FontSource) defaultCoords() []float32 {
	coords := make([]float32, len(s.axes))
	for i, a := range s.axes {
		coords[i] = a.Default
	}
	return coords
}

func (s *FontSource) clamp(axis int, v float32) float32 {
	a := s.axes[axis]
	return min(max(v, a.Min), a.Max)
}

// intern returns the shared instance for coords.
func (s *FontSource) intern(coords []float32) *Font {
	return s.instances.GetOrCreate(coordsKey(coords), func() *Font {
		return newFont(s, coords)
	})
}

// coordsKey encodes coordinates as a map key.
func coordsKey(coords []float32) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte(',')
		}
		if c == 0 {
			c = 0 // -0
		}
		b.WriteString(strconv.FormatUint(uint64(math.Float32bits(c)), 16))
	}
	return b.String()
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
