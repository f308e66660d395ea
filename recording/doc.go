// Package recording provides a drawing surface that records glyph drawing
// commands instead of painting them.
//
// A Recorder implements textlerp.Canvas. Draw an Interpolator into it,
// finish the recording, then inspect the commands, compare two recordings
// or replay one onto another canvas:
//
//	rec := recording.NewRecorder(800, 600)
//	ip.Draw(rec)
//	r := rec.FinishRecording()
//
//	for _, run := range r.GlyphRuns() {
//	    fmt.Println(len(run.Glyphs), run.Style.Size)
//	}
//
// # Backends
//
// Backends are canvases with a lifecycle. They register themselves by name
// in init(), following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/textlerp/raster" // registers "raster"
//
//	b, _ := recording.NewBackend("raster")
//	_ = r.Render(b)
//	_ = b.(recording.FileBackend).SaveToFile("frame.png")
//
// Fonts are stored once per font key in the recording's ResourcePool and
// referenced from draw commands by FontRef.
package recording
