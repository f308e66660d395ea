// Package color provides packed color types and blending for textlerp.
package color

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// UnpackARGB splits a packed 0xAARRGGBB value into components.
func UnpackARGB(c uint32) ColorU8 {
	return ColorU8{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// PackARGB packs components into a 0xAARRGGBB value.
func PackARGB(c ColorU8) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
