package recording

import "github.com/gogpu/textlerp"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current translation
	CmdRestore                      // Restore previous translation
	CmdTranslate                    // Translate the origin

	// Drawing commands
	CmdDrawGlyphs // Draw a run of glyphs
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:       "Save",
	CmdRestore:    "Restore",
	CmdTranslate:  "Translate",
	CmdDrawGlyphs: "DrawGlyphs",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FontRef is a reference to a font in the resource pool.
// The zero value is a valid reference to the first font (if any).
type FontRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a font.
func (r FontRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// SaveCommand saves the current translation.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved translation.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// DrawGlyphsCommand draws a run of glyphs with one font and style.
type DrawGlyphsCommand struct {
	// Glyphs are the glyph IDs of the run.
	Glyphs []textlerp.GlyphID

	// Positions are interleaved x, y pairs, two per glyph.
	Positions []float64

	// Font references the run's font in the resource pool.
	Font FontRef

	// Style is the style the run is painted with.
	Style textlerp.Style
}

// Type implements Command.
func (DrawGlyphsCommand) Type() CommandType { return CmdDrawGlyphs }

// Position returns the position of glyph i.
func (c DrawGlyphsCommand) Position(i int) (x, y float64) {
	return c.Positions[2*i], c.Positions[2*i+1]
}
