package text

import "github.com/gogpu/textlerp"

// Blender blends Font instances of the same FontSource by interpolating
// their axis values. It implements textlerp.FontBlender.
//
// Blended instances are interned by the source's bounded instance cache.
type Blender struct{}

// NewBlender returns a Blender.
func NewBlender() *Blender {
	return &Blender{}
}

// CanInterpolate reports whether a and b are instances of the same source.
// Instances of one source always share the same axes.
func (*Blender) CanInterpolate(a, b textlerp.Font) bool {
	fa, ok := a.(*Font)
	if !ok {
		return false
	}
	fb, ok := b.(*Font)
	return ok && fa.source == fb.source && len(fa.coords) == len(fb.coords)
}

// Lerp returns the instance between a and b at progress t. It returns a for
// t <= 0 or equal fonts, and b for t >= 1. Fonts that cannot be
// interpolated are not blended; a is returned.
func (bl *Blender) Lerp(a, b textlerp.Font, t float64) textlerp.Font {
	switch {
	case t <= 0 || a.Key() == b.Key():
		return a
	case t >= 1:
		return b
	case !bl.CanInterpolate(a, b):
		return a
	}

	fa, fb := a.(*Font), b.(*Font)
	coords := make([]float32, len(fa.coords))
	for i := range coords {
		coords[i] = float32(float64(fa.coords[i])*(1-t) + float64(fb.coords[i])*t)
	}
	return fa.source.intern(coords)
}
