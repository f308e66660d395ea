package text

import (
	"errors"
	"strconv"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFonts is returned when a shaper is created without a font source.
	ErrNoFonts = errors.New("text: no font sources")

	// ErrUnknownAxis is returned when a variation names an axis the font
	// does not have.
	ErrUnknownAxis = errors.New("text: unknown variation axis")

	// ErrMissingGlyph is returned when a glyph has no outline.
	ErrMissingGlyph = errors.New("text: glyph has no outline")
)

// AxisError is returned when a variation cannot be applied to a font source.
type AxisError struct {
	Font string
	Tag  string
}

func (e *AxisError) Error() string {
	return "text: font " + strconv.Quote(e.Font) + " has no variation axis " + strconv.Quote(e.Tag)
}

func (e *AxisError) Unwrap() error {
	return ErrUnknownAxis
}
