package textlerp

import (
	"errors"
	"strconv"
)

// Sentinel errors reported by the interpolator. All of them are precondition
// violations: the caller or a collaborator broke the contract that base and
// target describe the same text. None of them is retried internally.
var (
	// ErrShapeMismatch is returned when base and target shaping produce a
	// different number of lines for a new layout.
	ErrShapeMismatch = errors.New("textlerp: base and target have different line counts")

	// ErrLineCountMismatch is returned when a style-only reshape changes the
	// number of lines.
	ErrLineCountMismatch = errors.New("textlerp: reshape changed the line count")

	// ErrGlyphCountMismatch is returned when two shaping results of the same
	// line have different glyph counts.
	ErrGlyphCountMismatch = errors.New("textlerp: glyph count mismatch")

	// ErrGlyphIdentityMismatch is returned when two shaping results of the same
	// line disagree on a glyph ID.
	ErrGlyphIdentityMismatch = errors.New("textlerp: glyph ID mismatch")

	// ErrAsymmetricFontChange is returned when the base font changes at a glyph
	// where the target font does not, or the other way round.
	ErrAsymmetricFontChange = errors.New("textlerp: base and target fonts change at different glyphs")

	// ErrInconsistentFontRun is returned when a style-only reshape assigns more
	// than one font inside an existing font run.
	ErrInconsistentFontRun = errors.New("textlerp: font changes inside a font run")

	// ErrIncompatibleFonts is returned when the font blender cannot produce an
	// intermediate font between two fonts.
	ErrIncompatibleFonts = errors.New("textlerp: fonts cannot be interpolated")

	// ErrNoStyles is returned when an empty style list is applied.
	ErrNoStyles = errors.New("textlerp: style list is empty")

	// ErrNilCollaborator is returned by New when the layout, shaper or font
	// blender is nil.
	ErrNilCollaborator = errors.New("textlerp: nil layout, shaper or font blender")
)

// ReshapeError describes where a reshape failed.
// It wraps one of the sentinel errors above, so errors.Is works on it.
type ReshapeError struct {
	// Op is the operation that failed: "reshape", "reshape base" or "reshape target".
	Op string

	// Line is the line index, or -1 when the failure is not tied to a line.
	Line int

	// Index is the glyph index within the line, or -1.
	Index int

	// Err is the underlying sentinel error.
	Err error
}

func (e *ReshapeError) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.Line >= 0 {
		msg += " (line " + strconv.Itoa(e.Line)
		if e.Index >= 0 {
			msg += ", glyph " + strconv.Itoa(e.Index)
		}
		msg += ")"
	}
	return msg
}

func (e *ReshapeError) Unwrap() error {
	return e.Err
}

// glyphError is a ReshapeError template whose Op and Line are filled in by
// the caller that knows them.
func glyphError(index int, err error) *ReshapeError {
	return &ReshapeError{Line: -1, Index: index, Err: err}
}
