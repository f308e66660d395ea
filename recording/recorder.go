package recording

import (
	"math"
	"slices"

	"github.com/gogpu/textlerp"
)

// Recorder captures drawing operations as commands. It implements
// textlerp.Canvas, so an Interpolator can draw into it directly. Use
// FinishRecording to obtain a Recording that can be inspected, compared
// or replayed to another canvas.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	ip.Draw(rec)
//	r := rec.FinishRecording()
//	r.Playback(canvas)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	background    textlerp.Color
	commands      []Command
	resources     *ResourcePool

	// Current translation
	x, y float64

	// State stack
	stateStack []offset
}

// offset is the state saved by Save.
type offset struct {
	x, y float64
}

var _ textlerp.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		resources:  NewResourcePool(),
		stateStack: make([]offset, 0, 8),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// SetBackground sets the color a backend is filled with before playback.
// The default is textlerp.Transparent.
func (r *Recorder) SetBackground(c textlerp.Color) {
	r.background = c
}

// Save saves the current translation to the stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, offset{r.x, r.y})
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved translation.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	s := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.x, r.y = s.x, s.y
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate moves the origin by (dx, dy).
func (r *Recorder) Translate(dx, dy float64) {
	r.x += dx
	r.y += dy
	r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
}

// Origin returns the current translation.
func (r *Recorder) Origin() (x, y float64) {
	return r.x, r.y
}

// DrawGlyphs records a glyph run. The glyph and position slices are copied.
func (r *Recorder) DrawGlyphs(glyphs []textlerp.GlyphID, positions []float64, font textlerp.Font, style textlerp.Style) {
	r.commands = append(r.commands, DrawGlyphsCommand{
		Glyphs:    slices.Clone(glyphs),
		Positions: slices.Clone(positions),
		Font:      r.resources.AddFont(font),
		Style:     style.Clone(),
	})
}

// Reset discards all recorded commands and state, keeping the dimensions
// and the background. Recordings finished earlier are not affected.
func (r *Recorder) Reset() {
	r.commands = make([]Command, 0, len(r.commands))
	r.resources = NewResourcePool()
	r.stateStack = r.stateStack[:0]
	r.x, r.y = 0, 0
}

// FinishRecording returns a Recording containing all recorded commands.
// Call Reset before recording the next one.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:      r.width,
		height:     r.height,
		background: r.background,
		commands:   r.commands,
		resources:  r.resources,
	}
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	background    textlerp.Color
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Background returns the color backends are filled with by Render.
func (r *Recording) Background() textlerp.Color {
	return r.background
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool of the recording.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Font returns the font a draw command references.
func (r *Recording) Font(c DrawGlyphsCommand) textlerp.Font {
	return r.resources.GetFont(c.Font)
}

// GlyphRuns returns the draw commands of the recording in order.
func (r *Recording) GlyphRuns() []DrawGlyphsCommand {
	var runs []DrawGlyphsCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawGlyphsCommand); ok {
			runs = append(runs, c)
		}
	}
	return runs
}

// Playback replays the recorded commands onto c.
func (r *Recording) Playback(c textlerp.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
		case RestoreCommand:
			c.Restore()
		case TranslateCommand:
			c.Translate(cmd.DX, cmd.DY)
		case DrawGlyphsCommand:
			c.DrawGlyphs(cmd.Glyphs, cmd.Positions, r.Font(cmd), cmd.Style)
		}
	}
}

// Render fills a backend with the background and replays the recording onto
// it between Begin and End.
func (r *Recording) Render(b Backend) error {
	if err := b.Begin(r.width, r.height, r.background); err != nil {
		return err
	}
	r.Playback(b)
	return b.End()
}

// Equal reports whether two recordings paint the same thing: the same
// translations, glyphs and positions, fonts with the same keys, and the same
// size and color. Style attributes that only affect shaping are ignored.
func (r *Recording) Equal(o *Recording) bool {
	return r.EqualWithin(o, 0)
}

// EqualWithin is like Equal but accepts coordinates differing by at most eps.
func (r *Recording) EqualWithin(o *Recording, eps float64) bool {
	if len(r.commands) != len(o.commands) {
		return false
	}
	for i, cmd := range r.commands {
		if !r.equalCommand(o, cmd, o.commands[i], eps) {
			return false
		}
	}
	return true
}

func (r *Recording) equalCommand(o *Recording, a, b Command, eps float64) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case TranslateCommand:
		b := b.(TranslateCommand)
		return near(a.DX, b.DX, eps) && near(a.DY, b.DY, eps)
	case DrawGlyphsCommand:
		b := b.(DrawGlyphsCommand)
		if !slices.Equal(a.Glyphs, b.Glyphs) || a.Style.Size != b.Style.Size || a.Style.Color != b.Style.Color {
			return false
		}
		if !sameKey(r.Font(a), o.Font(b)) {
			return false
		}
		return slices.EqualFunc(a.Positions, b.Positions, func(x, y float64) bool {
			return near(x, y, eps)
		})
	default:
		return true
	}
}

func sameKey(a, b textlerp.Font) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

func near(a, b, eps float64) bool {
	return a == b || math.Abs(a-b) <= eps
}
