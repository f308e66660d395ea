package text

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textlerp"
)

const unknownStr = "Unknown"

// Alignment specifies horizontal alignment of a line within the layout width.
type Alignment int

const (
	// AlignStart aligns lines to the paragraph's start edge: left for
	// left-to-right paragraphs, right for right-to-left ones (default).
	AlignStart Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignEnd aligns lines to the paragraph's end edge.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// Direction selects the paragraph direction of a layout.
type Direction int

const (
	// DirectionAuto takes each paragraph's direction from its first strong
	// character, defaulting to left-to-right (default).
	DirectionAuto Direction = iota
	// DirectionLTR forces left-to-right paragraphs.
	DirectionLTR
	// DirectionRTL forces right-to-left paragraphs.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// WrapMode specifies how paragraphs wider than the layout width are broken.
type WrapMode uint8

const (
	// WrapNone keeps every paragraph on one line (default).
	WrapNone WrapMode = iota
	// WrapWord breaks after spaces. Words wider than the layout overflow.
	WrapWord
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	default:
		return unknownStr
	}
}

// LayoutOptions configures text layout.
type LayoutOptions struct {
	// Width is the layout width in pixels used for alignment and wrapping.
	// If 0, the widest line sets the width.
	Width float64

	// LineSpacing is a multiplier for line height.
	// 1.0 uses the font's natural line height.
	LineSpacing float64

	// Alignment specifies horizontal alignment.
	Alignment Alignment

	// Direction is the paragraph direction.
	Direction Direction

	// Wrap selects line wrapping. It needs a positive Width.
	Wrap WrapMode

	// Style is the style lines are measured with. Line breaks and edges
	// do not follow later style changes; interpolated styles only move
	// glyphs within their lines.
	Style textlerp.Style
}

// DefaultLayoutOptions returns sensible default layout options.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		LineSpacing: 1.0,
		Alignment:   AlignStart,
		Direction:   DirectionAuto,
		Style:       textlerp.Style{Size: 16, Color: textlerp.Black},
	}
}

// Line is one laid out line.
type Line struct {
	// Start and End delimit the line's runes in the layout text.
	Start, End int

	// Direction is the paragraph direction of the line.
	Direction textlerp.Direction

	// Left and Right are the horizontal edges of the line.
	Left, Right float64

	// Baseline is the Y coordinate of the line's baseline.
	Baseline float64
}

// Width returns the measured width of the line.
func (l Line) Width() float64 {
	return l.Right - l.Left
}

// Layout is plain text broken into lines. It implements textlerp.Layout.
type Layout struct {
	text   []rune
	lines  []Line
	width  float64
	height float64
}

var _ textlerp.Layout = (*Layout)(nil)

// lineMetrics is implemented by shapers that know the font's vertical
// metrics, such as GoTextShaper.
type lineMetrics interface {
	LineMetrics(style textlerp.Style) (ascent, descent, gap float64)
}

// NewLayout breaks text into lines at hard line breaks (and at spaces when
// wrapping), measures them with shaper and positions them.
func NewLayout(text string, shaper textlerp.Shaper, opts LayoutOptions) (*Layout, error) {
	if opts.LineSpacing <= 0 {
		opts.LineSpacing = 1
	}

	l := &Layout{text: []rune(text)}
	var widths []float64
	for _, para := range splitParagraphs(l.text) {
		dir := paragraphDirection(l.text[para.start:para.end], opts.Direction)
		lines, w, err := breakParagraph(l.text, para, dir, shaper, opts)
		if err != nil {
			return nil, err
		}
		l.lines = append(l.lines, lines...)
		widths = append(widths, w...)
	}

	l.width = opts.Width
	if l.width <= 0 {
		for _, w := range widths {
			l.width = max(l.width, w)
		}
	}

	ascent, descent, gap := 0.8*opts.Style.Size, 0.2*opts.Style.Size, 0.0
	if m, ok := shaper.(lineMetrics); ok {
		ascent, descent, gap = m.LineMetrics(opts.Style)
	}
	lineHeight := (ascent + descent + gap) * opts.LineSpacing

	for i := range l.lines {
		ln := &l.lines[i]
		ln.Left = alignedLeft(opts.Alignment, ln.Direction, l.width, widths[i])
		ln.Right = ln.Left + widths[i]
		ln.Baseline = ascent + float64(i)*lineHeight
	}
	if n := len(l.lines); n > 0 {
		l.height = float64(n-1)*lineHeight + ascent + descent
	}

	textlerp.Logger().Debug("text: layout",
		"lines", len(l.lines),
		"width", l.width,
		"height", l.height)
	return l, nil
}

// span is a range of runes.
type span struct {
	start, end int
}

// splitParagraphs splits text at "\n", "\r\n" and "\r".
// Text ending in a line break yields a final empty paragraph.
func splitParagraphs(text []rune) []span {
	var out []span
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			out = append(out, span{start, i})
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			out = append(out, span{start, i})
			start = i + 1
		}
	}
	return append(out, span{start, len(text)})
}

// paragraphDirection resolves the direction of a paragraph from its first
// strong character (rules P2 and P3 of the Unicode bidi algorithm).
func paragraphDirection(para []rune, d Direction) textlerp.Direction {
	switch d {
	case DirectionLTR:
		return textlerp.DirectionLTR
	case DirectionRTL:
		return textlerp.DirectionRTL
	}
	for _, r := range para {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return textlerp.DirectionLTR
		case bidi.R, bidi.AL:
			return textlerp.DirectionRTL
		}
	}
	return textlerp.DirectionLTR
}

// breakParagraph returns the lines of one paragraph and their widths.
func breakParagraph(text []rune, para span, dir textlerp.Direction, shaper textlerp.Shaper, opts LayoutOptions) ([]Line, []float64, error) {
	measure := func(start, end int) (float64, error) {
		run, err := shaper.Shape(textlerp.ShapeRequest{
			Text:         text,
			Start:        start,
			End:          end,
			ContextStart: para.start,
			ContextEnd:   para.end,
			RTL:          dir == textlerp.DirectionRTL,
			Style:        opts.Style,
		})
		if err != nil {
			return 0, fmt.Errorf("text: measuring line: %w", err)
		}
		return run.Advance, nil
	}

	if opts.Wrap == WrapNone || opts.Width <= 0 {
		w, err := measure(para.start, para.end)
		if err != nil {
			return nil, nil, err
		}
		return []Line{{Start: para.start, End: para.end, Direction: dir}}, []float64{w}, nil
	}

	var (
		lines  []Line
		widths []float64
	)
	start := para.start
	for start < para.end {
		end, w, err := fitLine(text, start, para.end, opts.Width, measure)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, Line{Start: start, End: trimTrailingSpace(text, start, end), Direction: dir})
		widths = append(widths, w)

		start = end
		for start < para.end && unicode.IsSpace(text[start]) {
			start++
		}
	}
	if len(lines) == 0 {
		lines = append(lines, Line{Start: para.start, End: para.end, Direction: dir})
		widths = append(widths, 0)
	}
	return lines, widths, nil
}

// fitLine returns the end of the longest run of whole words starting at
// start that fits in width, and its measured width without trailing spaces.
// A single word wider than width is returned on its own.
func fitLine(text []rune, start, end int, width float64, measure func(int, int) (float64, error)) (int, float64, error) {
	lineEnd, lineWidth := -1, 0.0
	for _, wordEnd := range wordEnds(text, start, end) {
		w, err := measure(start, trimTrailingSpace(text, start, wordEnd))
		if err != nil {
			return 0, 0, err
		}
		if lineEnd >= 0 && w > width {
			break
		}
		lineEnd, lineWidth = wordEnd, w
	}
	return lineEnd, lineWidth, nil
}

// wordEnds returns the positions after each word and its trailing spaces.
func wordEnds(text []rune, start, end int) []int {
	var out []int
	for i := start; i < end; i++ {
		if unicode.IsSpace(text[i]) && (i+1 == end || !unicode.IsSpace(text[i+1])) {
			out = append(out, i+1)
		}
	}
	if len(out) == 0 || out[len(out)-1] != end {
		out = append(out, end)
	}
	return out
}

func trimTrailingSpace(text []rune, start, end int) int {
	for end > start && unicode.IsSpace(text[end-1]) {
		end--
	}
	return end
}

// alignedLeft returns the left edge of a line of width w.
func alignedLeft(a Alignment, dir textlerp.Direction, layoutWidth, w float64) float64 {
	switch a {
	case AlignCenter:
		return (layoutWidth - w) / 2
	case AlignEnd:
		if dir == textlerp.DirectionRTL {
			return 0
		}
		return layoutWidth - w
	default:
		if dir == textlerp.DirectionRTL {
			return layoutWidth - w
		}
		return 0
	}
}

// Text implements textlerp.Layout.
func (l *Layout) Text() []rune { return l.text }

// LineCount implements textlerp.Layout.
func (l *Layout) LineCount() int { return len(l.lines) }

// LineStart implements textlerp.Layout.
func (l *Layout) LineStart(i int) int { return l.lines[i].Start }

// LineEnd implements textlerp.Layout.
func (l *Layout) LineEnd(i int) int { return l.lines[i].End }

// ParagraphDirection implements textlerp.Layout.
func (l *Layout) ParagraphDirection(i int) textlerp.Direction { return l.lines[i].Direction }

// LineLeft implements textlerp.Layout.
func (l *Layout) LineLeft(i int) float64 { return l.lines[i].Left }

// LineRight implements textlerp.Layout.
func (l *Layout) LineRight(i int) float64 { return l.lines[i].Right }

// LineBaseline implements textlerp.Layout.
func (l *Layout) LineBaseline(i int) float64 { return l.lines[i].Baseline }

// Lines returns a copy of the laid out lines.
func (l *Layout) Lines() []Line {
	return append([]Line(nil), l.lines...)
}

// Width returns the layout width.
func (l *Layout) Width() float64 { return l.width }

// Height returns the distance from the top of the first line to the bottom
// of the last one.
func (l *Layout) Height() float64 { return l.height }
