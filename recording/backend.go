package recording

import (
	"image"

	"github.com/gogpu/textlerp"
)

// Backend is a drawing surface a Recording can be rendered to.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewCanvas(0, 0)
//	    })
//	}
type Backend interface {
	textlerp.Canvas

	// Begin prepares the backend for rendering at the given dimensions and
	// fills it with background. It must be called before any drawing
	// operations.
	Begin(width, height int, background textlerp.Color) error

	// End finalizes the rendering. Output methods are valid afterwards.
	End() error
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image.
	Image() *image.RGBA
}
