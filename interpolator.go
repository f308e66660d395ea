package textlerp

import (
	"fmt"
	"math"
)

// Interpolator blends text between a base and a target style.
//
// The text is shaped once under each style. Drawing at a progress in [0, 1]
// linearly blends glyph positions, blends fonts through the FontBlender and
// blends the style size and color, without shaping again.
//
// Interpolator is NOT safe for concurrent use. All methods must be called
// from one goroutine, typically the one driving the animation.
type Interpolator struct {
	layout  Layout
	shaper  Shaper
	blender FontBlender

	base   []Style
	target []Style

	lines    []*line
	progress float64

	// scratch receives blended positions while drawing. It only grows.
	scratch []float64

	// drawStyles is reused across frames.
	drawStyles []Style
}

// New creates an Interpolator for layout and shapes it.
//
// Both the base and the target style list start with copies of style.
// An error is returned if shaping fails or the two shaping results cannot
// be interpolated.
func New(layout Layout, shaper Shaper, blender FontBlender, style Style, opts ...Option) (*Interpolator, error) {
	if layout == nil || shaper == nil || blender == nil {
		return nil, ErrNilCollaborator
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ip := &Interpolator{
		shaper:   shaper,
		blender:  blender,
		base:     make([]Style, o.styleCount),
		target:   make([]Style, o.styleCount),
		progress: o.progress,
		scratch:  make([]float64, 2*o.scratchCapacity),
	}
	for i := 0; i < o.styleCount; i++ {
		ip.base[i] = style.Clone()
		ip.target[i] = style.Clone()
	}

	if err := ip.SetLayout(layout); err != nil {
		return nil, err
	}
	return ip, nil
}

// Layout returns the current layout.
func (ip *Interpolator) Layout() Layout {
	return ip.layout
}

// SetLayout replaces the layout and shapes it under both style lists.
//
// The styles and the progress are kept. On error the previous layout and
// shaping state remain in effect.
func (ip *Interpolator) SetLayout(layout Layout) error {
	if layout == nil {
		return ErrNilCollaborator
	}

	baseRuns, err := shapeLayout(ip.shaper, layout, ip.base)
	if err != nil {
		return err
	}
	targetRuns, err := shapeLayout(ip.shaper, layout, ip.target)
	if err != nil {
		return err
	}
	if len(baseRuns) != len(targetRuns) {
		return &ReshapeError{Op: "reshape", Line: -1, Index: -1, Err: ErrShapeMismatch}
	}

	lines := make([]*line, len(baseRuns))
	longest := 0
	for i := range baseRuns {
		l, n, err := newLine(&baseRuns[i], &targetRuns[i], ip.blender)
		if err != nil {
			return withLine(err, "reshape", i)
		}
		lines[i] = l
		longest = max(longest, n)
	}

	ip.layout = layout
	ip.lines = lines
	ip.growScratch(longest)

	Logger().Debug("textlerp: reshaped",
		"lines", len(lines),
		"longestRun", longest,
		"scratch", len(ip.scratch))
	return nil
}

// Progress returns the interpolation progress: 0 is the base state,
// 1 the target state.
func (ip *Interpolator) Progress() float64 {
	return ip.progress
}

// SetProgress sets the interpolation progress, clamped to [0, 1].
func (ip *Interpolator) SetProgress(p float64) {
	ip.progress = clampProgress(p)
}

// BaseStyles returns a copy of the base style list.
func (ip *Interpolator) BaseStyles() []Style {
	return cloneStyles(ip.base)
}

// TargetStyles returns a copy of the target style list.
func (ip *Interpolator) TargetStyles() []Style {
	return cloneStyles(ip.target)
}

// ApplyBaseStyle replaces the base style list and reshapes the base side.
//
// A single style applies to every line; more styles apply per line, with
// lines beyond the list using the first one. The styles are copied.
// The new styles must not change line breaks, glyphs or the font run
// structure; on error nothing is modified.
//
// Calling ApplyBaseStyle after a Rebase in the middle of an animation makes
// the text jump: the rebased positions are a linear approximation, while
// reshaping produces the real positions for the new base style.
func (ip *Interpolator) ApplyBaseStyle(styles ...Style) error {
	return ip.applyStyles(sideBase, styles)
}

// ApplyTargetStyle replaces the target style list and reshapes the target
// side. See ApplyBaseStyle for the rules that apply.
func (ip *Interpolator) ApplyTargetStyle(styles ...Style) error {
	return ip.applyStyles(sideTarget, styles)
}

// applyStyles reshapes one side under new styles and updates the lines in
// place. Every line is validated before any of them is touched.
func (ip *Interpolator) applyStyles(s side, styles []Style) error {
	op := "reshape " + s.String()
	if len(styles) == 0 {
		return &ReshapeError{Op: op, Line: -1, Index: -1, Err: ErrNoStyles}
	}
	styles = cloneStyles(styles)

	shaped, err := shapeLayout(ip.shaper, ip.layout, styles)
	if err != nil {
		return err
	}
	if len(shaped) != len(ip.lines) {
		return &ReshapeError{Op: op, Line: -1, Index: -1, Err: ErrLineCountMismatch}
	}

	fonts := make([][]Font, len(ip.lines))
	for i, l := range ip.lines {
		f, err := l.runFonts(&shaped[i], s, ip.blender)
		if err != nil {
			return withLine(err, op, i)
		}
		fonts[i] = f
	}

	for i, l := range ip.lines {
		l.update(&shaped[i], fonts[i], s)
	}
	if s == sideBase {
		ip.base = styles
	} else {
		ip.target = styles
	}

	Logger().Debug("textlerp: reshaped "+s.String(), "lines", len(ip.lines), "styles", len(styles))
	return nil
}

// Rebase makes the current blended state the new base state and resets the
// progress to 0, without shaping again. Drawing right after Rebase looks
// exactly like drawing right before it.
//
// Rebase is useful to start a new animation from the middle of the current
// one: rebase, apply a new target style, and animate the progress from 0.
// Do not call ApplyBaseStyle afterwards; see its documentation.
func (ip *Interpolator) Rebase() {
	t := ip.progress
	if t == 0 {
		return
	}
	if t == 1 {
		ip.base = cloneStyles(ip.target)
	} else {
		ip.base = lerpStyles(nil, ip.base, ip.target, t)
	}

	for _, l := range ip.lines {
		l.rebase(t, ip.blender)
	}
	ip.progress = 0

	Logger().Debug("textlerp: rebased", "progress", t)
}

// LineCount returns the number of shaped lines.
func (ip *Interpolator) LineCount() int {
	return len(ip.lines)
}

// Glyphs returns a copy of the glyph IDs of a line.
func (ip *Interpolator) Glyphs(line int) []GlyphID {
	return append([]GlyphID(nil), ip.lines[line].glyphs...)
}

// FontRuns returns a copy of the font runs of a line.
func (ip *Interpolator) FontRuns(line int) []FontRun {
	return append([]FontRun(nil), ip.lines[line].runs...)
}

// AppendPositions appends the blended glyph positions of a line at the
// current progress to dst, as x, y pairs relative to the line's draw origin.
func (ip *Interpolator) AppendPositions(dst []float64, line int) []float64 {
	l := ip.lines[line]
	for i := range l.glyphs {
		dst = append(dst,
			lerp(l.baseX[i], l.targetX[i], ip.progress),
			lerp(l.baseY[i], l.targetY[i], ip.progress))
	}
	return dst
}

// BlendedStyles returns the blended style list at the current progress.
func (ip *Interpolator) BlendedStyles() []Style {
	return lerpStyles(nil, ip.base, ip.target, ip.progress)
}

// growScratch makes room for a run of n glyphs.
func (ip *Interpolator) growScratch(n int) {
	if len(ip.scratch) >= 2*n {
		return
	}
	Logger().Debug("textlerp: growing scratch buffer", "from", len(ip.scratch), "to", 2*n)
	ip.scratch = make([]float64, 2*n)
}

// shapeLayout shapes every line of layout, using the style of the line, or
// the first style for lines the list does not cover.
func shapeLayout(shaper Shaper, layout Layout, styles []Style) ([]ShapedRun, error) {
	text := layout.Text()
	n := layout.LineCount()
	out := make([]ShapedRun, 0, n)
	for i := 0; i < n; i++ {
		start, end := layout.LineStart(i), layout.LineEnd(i)
		run, err := shaper.Shape(ShapeRequest{
			Text:         text,
			Start:        start,
			End:          end,
			ContextStart: start,
			ContextEnd:   end,
			RTL:          layout.ParagraphDirection(i) == DirectionRTL,
			Style:        styleAt(styles, i),
		})
		if err != nil {
			return nil, fmt.Errorf("textlerp: shaping line %d: %w", i, err)
		}
		out = append(out, run)
	}
	return out, nil
}

// withLine fills in the operation and line of a ReshapeError.
func withLine(err error, op string, line int) error {
	if re, ok := err.(*ReshapeError); ok {
		re.Op = op
		re.Line = line
		return re
	}
	return err
}

// clampProgress clamps p to [0, 1]. NaN maps to 0.
func clampProgress(p float64) float64 {
	switch {
	case p < 0 || math.IsNaN(p):
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
