package textlerp

import (
	"strconv"
	"strings"
	"testing"
	"unicode"
)

// fakeFont is a font identified by family and weight.
type fakeFont struct {
	key    FontKey
	family string
	weight float64
}

func (f *fakeFont) Key() FontKey { return f.key }

// fakeFonts interns fonts so equal (family, weight) pairs share one key.
type fakeFonts struct {
	byName map[string]*fakeFont
	next   FontKey
}

func newFakeFonts() *fakeFonts {
	return &fakeFonts{byName: make(map[string]*fakeFont)}
}

func (ff *fakeFonts) get(family string, weight float64) *fakeFont {
	name := family + "/" + strconvFloat(weight)
	if f, ok := ff.byName[name]; ok {
		return f
	}
	ff.next++
	f := &fakeFont{key: ff.next, family: family, weight: weight}
	ff.byName[name] = f
	return f
}

// fakeBlender blends fakeFonts of the same family by weight.
type fakeBlender struct {
	fonts *fakeFonts
	lerps int
}

func (b *fakeBlender) CanInterpolate(x, y Font) bool {
	fx, ok1 := x.(*fakeFont)
	fy, ok2 := y.(*fakeFont)
	return ok1 && ok2 && fx.family == fy.family
}

func (b *fakeBlender) Lerp(x, y Font, t float64) Font {
	b.lerps++
	if t == 0 || sameFont(x, y) {
		return x
	}
	if t == 1 {
		return y
	}
	fx, fy := x.(*fakeFont), y.(*fakeFont)
	return b.fonts.get(fx.family, lerp(fx.weight, fy.weight, t))
}

// fakeShaper lays glyphs out on a grid derived from the style: digits use a
// "mono" family, everything else "sans"; the advance scales with size and
// weight.
type fakeShaper struct {
	fonts *fakeFonts

	// mutate, if set, may edit the result before it is returned.
	mutate func(req ShapeRequest, run *ShapedRun)

	// err, if set, is returned instead of a result.
	err error

	calls int
}

func (s *fakeShaper) Shape(req ShapeRequest) (ShapedRun, error) {
	s.calls++
	if s.err != nil {
		return ShapedRun{}, s.err
	}

	weight := 400.0
	family := ""
	for _, v := range req.Style.Variations {
		switch v.Tag {
		case "wght":
			weight = float64(v.Value)
		case "FAMI":
			family = "serif"
		}
	}

	var run ShapedRun
	x := req.OriginX
	for i, r := range req.Text[req.Start:req.End] {
		fam := family
		if fam == "" {
			fam = "sans"
			if unicode.IsDigit(r) {
				fam = "mono"
			}
		}
		adv := req.Style.Size*0.55*weight/400 + req.Style.LetterSpacing
		g := ShapedGlyph{
			ID:   GlyphID(r),
			X:    x,
			Y:    req.OriginY + float64(i%2)*req.Style.Size*0.05,
			Font: s.fonts.get(fam, weight),
		}
		if req.RTL {
			g.X = -x - adv
		}
		run.Glyphs = append(run.Glyphs, g)
		x += adv
	}
	run.Advance = x - req.OriginX
	if s.mutate != nil {
		s.mutate(req, &run)
	}
	return run, nil
}

// fakeLayout is a plain multi-line layout.
type fakeLayout struct {
	text   []rune
	starts []int
	ends   []int
	dirs   []Direction

	// counts, if not empty, overrides LineCount call by call.
	counts []int
}

func newFakeLayout(lines ...string) *fakeLayout {
	l := &fakeLayout{}
	for _, s := range lines {
		if len(l.text) > 0 {
			l.text = append(l.text, '\n')
		}
		l.starts = append(l.starts, len(l.text))
		l.text = append(l.text, []rune(s)...)
		l.ends = append(l.ends, len(l.text))
		l.dirs = append(l.dirs, DirectionLTR)
	}
	return l
}

func (l *fakeLayout) Text() []rune { return l.text }

func (l *fakeLayout) LineCount() int {
	if len(l.counts) > 0 {
		n := l.counts[0]
		l.counts = l.counts[1:]
		return n
	}
	return len(l.starts)
}

func (l *fakeLayout) LineStart(i int) int                { return l.starts[i] }
func (l *fakeLayout) LineEnd(i int) int                  { return l.ends[i] }
func (l *fakeLayout) ParagraphDirection(i int) Direction { return l.dirs[i] }
func (l *fakeLayout) LineLeft(i int) float64             { return 5 }
func (l *fakeLayout) LineRight(i int) float64            { return 195 }
func (l *fakeLayout) LineBaseline(i int) float64         { return 20 + 30*float64(i) }

// drawCall is one recorded DrawGlyphs call with the translation in effect.
type drawCall struct {
	dx, dy    float64
	glyphs    []GlyphID
	positions []float64
	font      FontKey
	style     Style
}

// fakeCanvas records draw calls.
type fakeCanvas struct {
	dx, dy float64
	stack  [][2]float64
	calls  []drawCall
	saves  int
}

func (c *fakeCanvas) Save() {
	c.saves++
	c.stack = append(c.stack, [2]float64{c.dx, c.dy})
}

func (c *fakeCanvas) Restore() {
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dx, c.dy = top[0], top[1]
}

func (c *fakeCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

func (c *fakeCanvas) DrawGlyphs(glyphs []GlyphID, positions []float64, font Font, style Style) {
	c.calls = append(c.calls, drawCall{
		dx:        c.dx,
		dy:        c.dy,
		glyphs:    append([]GlyphID(nil), glyphs...),
		positions: append([]float64(nil), positions...),
		font:      font.Key(),
		style:     style.Clone(),
	})
}

// fixture wires an Interpolator to fakes.
type fixture struct {
	t       testing.TB
	fonts   *fakeFonts
	layout  *fakeLayout
	shaper  *fakeShaper
	blender *fakeBlender
	style   Style
	opts    []Option
}

// newFixture creates a fixture with lineCount lines of glyphsPerLine letters.
func newFixture(t testing.TB, lineCount, glyphsPerLine int) *fixture {
	t.Helper()
	lines := make([]string, lineCount)
	for i := range lines {
		lines[i] = strings.Repeat("abcdefghij", glyphsPerLine/10+1)[:glyphsPerLine]
	}
	return newFixtureText(t, lines...)
}

// newFixtureText creates a fixture for the given lines.
func newFixtureText(t testing.TB, lines ...string) *fixture {
	t.Helper()
	fonts := newFakeFonts()
	return &fixture{
		t:       t,
		fonts:   fonts,
		layout:  newFakeLayout(lines...),
		shaper:  &fakeShaper{fonts: fonts},
		blender: &fakeBlender{fonts: fonts},
		style:   Style{Size: 10, Color: Black},
	}
}

func (fx *fixture) build() (*Interpolator, error) {
	return New(fx.layout, fx.shaper, fx.blender, fx.style, fx.opts...)
}

func (fx *fixture) mustBuild() *Interpolator {
	fx.t.Helper()
	ip, err := fx.build()
	if err != nil {
		fx.t.Fatalf("New() = %v", err)
	}
	return ip
}

// shape shapes line i of the fixture layout under style, bypassing the
// interpolator.
func (fx *fixture) shape(i int, style Style) ShapedRun {
	fx.t.Helper()
	run, err := fx.shaper.Shape(ShapeRequest{
		Text:  fx.layout.text,
		Start: fx.layout.starts[i],
		End:   fx.layout.ends[i],
		RTL:   fx.layout.dirs[i] == DirectionRTL,
		Style: style,
	})
	if err != nil {
		fx.t.Fatalf("Shape() = %v", err)
	}
	return run
}

// draw draws ip on a fresh canvas and returns the calls.
func draw(ip *Interpolator) []drawCall {
	c := &fakeCanvas{}
	ip.Draw(c)
	return c.calls
}

func weight(w float32) []Variation {
	return []Variation{{Tag: "wght", Value: w}}
}

func strconvFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
