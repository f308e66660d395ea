package textlerp

import (
	"image/color"

	icolor "github.com/gogpu/textlerp/internal/color"
)

// Color is a packed, non-premultiplied 0xAARRGGBB color.
type Color uint32

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// ARGB creates a color from 8-bit components.
func ARGB(a, r, g, b uint8) Color {
	return Color(icolor.PackARGB(icolor.ColorU8{R: r, G: g, B: b, A: a}))
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha component.
func (c Color) A() uint8 { return icolor.UnpackARGB(uint32(c)).A }

// R returns the red component.
func (c Color) R() uint8 { return icolor.UnpackARGB(uint32(c)).R }

// G returns the green component.
func (c Color) G() uint8 { return icolor.UnpackARGB(uint32(c)).G }

// B returns the blue component.
func (c Color) B() uint8 { return icolor.UnpackARGB(uint32(c)).B }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	u := icolor.UnpackARGB(uint32(c))
	return color.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}.RGBA()
}

// BlendColor blends a and b channel by channel at progress t. Blended
// channels are truncated toward zero.
func BlendColor(a, b Color, t float64) Color {
	return Color(icolor.BlendARGB(uint32(a), uint32(b), float32(t)))
}
