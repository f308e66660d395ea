package color

// lerpChannel blends one 8-bit channel as a*(1-t) + b*t and truncates the
// result toward zero. Equal channels are returned unchanged.
func lerpChannel(a, b uint8, t float32) uint8 {
	if a == b {
		return a
	}
	v := float32(a)*(1-t) + float32(b)*t
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Blend blends two colors channel by channel, alpha included.
func Blend(a, b ColorU8, t float32) ColorU8 {
	return ColorU8{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// BlendARGB blends two packed 0xAARRGGBB colors channel by channel.
// Progress outside (0,1) returns the nearest endpoint unchanged.
func BlendARGB(a, b uint32, t float32) uint32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return PackARGB(Blend(UnpackARGB(a), UnpackARGB(b), t))
}
