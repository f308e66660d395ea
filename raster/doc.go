// Package raster draws interpolated text into an RGBA image.
//
// Canvas implements textlerp.Canvas on an *image.RGBA. Glyph outlines come
// from text.Font instances and are filled with golang.org/x/image/vector,
// anti-aliased, in the style color:
//
//	c := raster.NewCanvas(400, 120, raster.WithBackground(textlerp.White))
//	ip.Draw(c)
//	_ = c.SavePNG("frame.png")
//
// Importing the package registers the canvas as the "raster" backend of the
// recording package.
package raster
