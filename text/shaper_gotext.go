package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlerp"
)

// GoTextShaper shapes text with go-text/typesetting's HarfBuzz port.
// It implements textlerp.Shaper.
//
// Every rune is assigned to the first source that covers it, starting with
// the primary source and continuing with the fallback sources. Runes no
// source covers stay with the font of the preceding rune. Each resulting
// face run is shaped separately at the style's size with the style's
// variations applied, so the returned glyphs carry the *Font instance that
// must be used to draw them.
//
// GoTextShaper is safe for concurrent use. The HarfbuzzShaper instances are
// pooled via sync.Pool since they are not. A HarfbuzzShaper caches its
// HarfBuzz font per *font.Font, which all instances of a source share, so
// every font instance gets its own pool.
type GoTextShaper struct {
	sources  []*FontSource
	language language.Language
	features []shaping.FontFeature

	pools *Cache[textlerp.FontKey, *sync.Pool]
}

// shaperPoolLimit bounds the number of font instances with pooled shapers.
const shaperPoolLimit = 64

// NewGoTextShaper creates a shaper for the primary font source.
func NewGoTextShaper(primary *FontSource, opts ...ShaperOption) (*GoTextShaper, error) {
	if primary == nil {
		return nil, ErrNoFonts
	}
	config := defaultShaperConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s := &GoTextShaper{
		sources:  append([]*FontSource{primary}, config.fallback...),
		language: config.language,
		pools:    NewCache[textlerp.FontKey, *sync.Pool](shaperPoolLimit),
	}
	for _, f := range config.features {
		if len(f.Tag) != 4 {
			textlerp.Logger().Warn("text: ignoring malformed feature tag", "tag", f.Tag)
			continue
		}
		s.features = append(s.features, shaping.FontFeature{Tag: ot.MustNewTag(f.Tag), Value: f.Value})
	}
	return s, nil
}

// Primary returns the primary font source.
func (s *GoTextShaper) Primary() *FontSource {
	return s.sources[0]
}

// Shape implements textlerp.Shaper.
//
// Positions are in pixels with Y growing downward. Left-to-right text
// starts at the origin and extends to the right; right-to-left text ends at
// the origin and extends to the left.
func (s *GoTextShaper) Shape(req textlerp.ShapeRequest) (textlerp.ShapedRun, error) {
	var run textlerp.ShapedRun
	if req.End <= req.Start {
		return run, nil
	}

	ctxStart, ctxEnd := req.ContextStart, req.ContextEnd
	if ctxStart > req.Start || ctxEnd < req.End || ctxEnd <= ctxStart {
		ctxStart, ctxEnd = req.Start, req.End
	}
	runes := req.Text[ctxStart:ctxEnd]

	dir := di.DirectionLTR
	if req.RTL {
		dir = di.DirectionRTL
	}

	pen := req.OriginX
	for _, fr := range s.faceRuns(req.Text, req.Start, req.End) {
		f := s.sources[fr.source].fontFor(req.Style.Variations)
		out := s.shape(f.Key(), shaping.Input{
			Text:         runes,
			RunStart:     fr.start - ctxStart,
			RunEnd:       fr.end - ctxStart,
			Direction:    dir,
			Face:         f.Face(),
			FontFeatures: s.features,
			Size:         floatToFixed(req.Style.Size),
			Script:       detectScript(req.Text[fr.start:fr.end]),
			Language:     s.language,
		})

		width := 0.0
		for _, g := range out.Glyphs {
			width += math.Abs(fixedToFloat(g.XAdvance)) + req.Style.LetterSpacing
		}

		// Glyphs come in visual order. Face runs are in logical order, so
		// right-to-left runs are placed leftwards from the pen.
		x := pen
		if req.RTL {
			x = pen - width
		}
		for _, g := range out.Glyphs {
			run.Glyphs = append(run.Glyphs, textlerp.ShapedGlyph{
				ID:   textlerp.GlyphID(g.GlyphID),
				X:    x + fixedToFloat(g.XOffset),
				Y:    req.OriginY - fixedToFloat(g.YOffset),
				Font: f,
			})
			x += math.Abs(fixedToFloat(g.XAdvance)) + req.Style.LetterSpacing
		}
		if req.RTL {
			pen -= width
		} else {
			pen += width
		}
		run.Advance += width
	}
	return run, nil
}

// shape runs one HarfBuzz shaping call with a shaper pooled for the font
// instance identified by key.
func (s *GoTextShaper) shape(key textlerp.FontKey, in shaping.Input) shaping.Output {
	pool := s.pools.GetOrCreate(key, func() *sync.Pool {
		return &sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }}
	})
	hb := pool.Get().(*shaping.HarfbuzzShaper)
	defer pool.Put(hb)
	return hb.Shape(in)
}

// faceRun is a maximal range of runes resolved to one font source.
type faceRun struct {
	start, end int
	source     int
}

// faceRuns splits text[start:end] by font source.
func (s *GoTextShaper) faceRuns(text []rune, start, end int) []faceRun {
	var runs []faceRun
	prev := 0
	for i := start; i < end; i++ {
		src := s.sourceFor(text[i], prev)
		if len(runs) > 0 && runs[len(runs)-1].source == src {
			runs[len(runs)-1].end = i + 1
		} else {
			runs = append(runs, faceRun{start: i, end: i + 1, source: src})
		}
		prev = src
	}
	return runs
}

// sourceFor returns the index of the first source covering r. Runes no
// source covers keep the previous source.
func (s *GoTextShaper) sourceFor(r rune, prev int) int {
	for i, src := range s.sources {
		if src.Covers(r) {
			return i
		}
	}
	textlerp.Logger().Debug("text: no font covers rune", "rune", string(r))
	return prev
}

// LineMetrics returns the ascent, descent and line gap of the primary font
// at the style's size and variations, in pixels.
func (s *GoTextShaper) LineMetrics(style textlerp.Style) (ascent, descent, gap float64) {
	src := s.sources[0]
	face := src.fontFor(style.Variations).Face()
	scale := style.Size / src.upem
	ext, ok := face.FontHExtents()
	if !ok {
		return 0.8 * style.Size, 0.2 * style.Size, 0
	}
	return float64(ext.Ascender) * scale, -float64(ext.Descender) * scale, float64(ext.LineGap) * scale
}

// detectScript inspects the runes and returns the script of the first
// character with a specific script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc != language.Common && sc != language.Inherited && sc != language.Unknown {
			return sc
		}
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
