package textlerp

import "slices"

// Variation is a font variation setting, such as {"wght", 700}.
type Variation struct {
	// Tag is the four-letter axis tag.
	Tag string

	// Value is the axis position in design units.
	Value float32
}

// Style describes how one line of text is shaped and painted.
//
// Only Size and Color are blended by the interpolator. The remaining fields
// are handed to the shaper and are expected to be expressed through the
// fonts it returns (a different weight yields a different font instance,
// which is then blended by the FontBlender).
type Style struct {
	// Size is the font size in pixels.
	Size float64

	// Color is the text color.
	Color Color

	// Variations are the font variation settings.
	Variations []Variation

	// LetterSpacing is extra advance added after every glyph, in pixels.
	LetterSpacing float64
}

// Clone returns a deep copy of the style.
func (s Style) Clone() Style {
	if s.Variations != nil {
		s.Variations = append([]Variation(nil), s.Variations...)
	}
	return s
}

// LerpStyle returns base with Size and Color blended towards target at progress t.
// All other attributes are taken from base. The result shares no memory with
// either argument.
func LerpStyle(base, target Style, t float64) Style {
	out := base.Clone()
	out.Size = lerp(base.Size, target.Size, t)
	out.Color = BlendColor(base.Color, target.Color, t)
	return out
}

// lerp returns the linear interpolation between a and b.
// The two-product form reproduces a at t == 0 and b at t == 1 bit for bit.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// styleAt returns styles[i], falling back to styles[0] when the list does not
// cover line i.
func styleAt(styles []Style, i int) Style {
	if i < len(styles) {
		return styles[i]
	}
	return styles[0]
}

// cloneStyles returns a deep copy of the list.
func cloneStyles(styles []Style) []Style {
	out := make([]Style, len(styles))
	for i, s := range styles {
		out[i] = s.Clone()
	}
	return out
}

// lerpStyles appends the blended style list to dst. The list is as long as
// the longer of base and target; the shorter one falls back to its index 0.
func lerpStyles(dst, base, target []Style, t float64) []Style {
	n := max(len(base), len(target))
	for i := 0; i < n; i++ {
		dst = append(dst, LerpStyle(styleAt(base, i), styleAt(target, i), t))
	}
	return dst
}

// Equal reports whether s and o describe the same style.
func (s Style) Equal(o Style) bool {
	return s.Size == o.Size &&
		s.Color == o.Color &&
		s.LetterSpacing == o.LetterSpacing &&
		slices.Equal(s.Variations, o.Variations)
}
