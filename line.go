package textlerp

// line holds the interpolation state of one text line.
//
// glyphs never changes after construction. The position slices and the run
// fonts are updated in place when only a style changes.
type line struct {
	glyphs []GlyphID

	baseX, baseY     []float64
	targetX, targetY []float64

	runs []FontRun
}

// newLine builds a line from the base and target shaping results of the same
// text line. It returns the length of the longest font run.
func newLine(base, target *ShapedRun, blender FontBlender) (*line, int, error) {
	n := base.GlyphCount()
	if n != target.GlyphCount() {
		return nil, 0, glyphError(-1, ErrGlyphCountMismatch)
	}

	l := &line{
		glyphs:  make([]GlyphID, n),
		baseX:   make([]float64, n),
		baseY:   make([]float64, n),
		targetX: make([]float64, n),
		targetY: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b, t := &base.Glyphs[i], &target.Glyphs[i]
		if b.ID != t.ID {
			return nil, 0, glyphError(i, ErrGlyphIdentityMismatch)
		}
		l.glyphs[i] = b.ID
		l.baseX[i], l.baseY[i] = b.X, b.Y
		l.targetX[i], l.targetY[i] = t.X, t.Y
	}

	runs, longest, err := segmentFontRuns(base, target, blender)
	if err != nil {
		return nil, 0, err
	}
	l.runs = runs
	return l, longest, nil
}

// side selects the base or the target state of a line.
type side int

const (
	sideBase side = iota
	sideTarget
)

func (s side) String() string {
	if s == sideBase {
		return "base"
	}
	return "target"
}

// positions returns the X and Y slices of one side.
func (l *line) positions(s side) (xs, ys []float64) {
	if s == sideBase {
		return l.baseX, l.baseY
	}
	return l.targetX, l.targetY
}

// runFonts validates a reshaped side against the existing line and returns
// the new font of every run. The line is not modified.
//
// Every run must keep one font across all its glyphs, and that font must be
// compatible with the font of the other, unchanged side.
func (l *line) runFonts(shaped *ShapedRun, s side, blender FontBlender) ([]Font, error) {
	if shaped.GlyphCount() != len(l.glyphs) {
		return nil, glyphError(-1, ErrGlyphCountMismatch)
	}

	fonts := make([]Font, len(l.runs))
	for r, run := range l.runs {
		newFont := shaped.Glyphs[run.Start].Font
		for i := run.Start; i < run.End; i++ {
			g := &shaped.Glyphs[i]
			if g.ID != l.glyphs[i] {
				return nil, glyphError(i, ErrGlyphIdentityMismatch)
			}
			if !sameFont(newFont, g.Font) {
				return nil, glyphError(i, ErrInconsistentFontRun)
			}
		}

		other := run.TargetFont
		if s == sideTarget {
			other = run.BaseFont
		}
		if !blender.CanInterpolate(newFont, other) {
			return nil, glyphError(run.Start, ErrIncompatibleFonts)
		}
		fonts[r] = newFont
	}
	return fonts, nil
}

// update overwrites one side with a validated reshape result.
// fonts must come from runFonts for the same shaped run.
func (l *line) update(shaped *ShapedRun, fonts []Font, s side) {
	xs, ys := l.positions(s)
	for i := range l.glyphs {
		xs[i] = shaped.Glyphs[i].X
		ys[i] = shaped.Glyphs[i].Y
	}
	for r := range l.runs {
		if s == sideBase {
			l.runs[r].BaseFont = fonts[r]
		} else {
			l.runs[r].TargetFont = fonts[r]
		}
	}
}

// rebase moves the base state to the blended state at progress t.
func (l *line) rebase(t float64, blender FontBlender) {
	for i := range l.glyphs {
		l.baseX[i] = lerp(l.baseX[i], l.targetX[i], t)
		l.baseY[i] = lerp(l.baseY[i], l.targetY[i], t)
	}
	for r := range l.runs {
		run := &l.runs[r]
		run.BaseFont = blender.Lerp(run.BaseFont, run.TargetFont, t)
	}
}

// blendRun writes the blended positions of a run as x, y pairs into dst,
// which must hold at least 2*run.Len() values, and returns the used part.
func (l *line) blendRun(dst []float64, run FontRun, t float64) []float64 {
	dst = dst[:2*run.Len()]
	j := 0
	for i := run.Start; i < run.End; i++ {
		dst[j] = lerp(l.baseX[i], l.targetX[i], t)
		dst[j+1] = lerp(l.baseY[i], l.targetY[i], t)
		j += 2
	}
	return dst
}
