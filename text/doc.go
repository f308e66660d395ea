// Package text provides the go-text/typesetting based collaborators of
// package textlerp.
//
// The pieces follow a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Font: one instance of a source at a position in its variation space;
//     instances are interned, so equal instances share one identity
//   - Blender: blends instances of one source by interpolating axis values
//   - GoTextShaper: HarfBuzz shaping with fallback fonts
//   - Layout: hard line breaks, optional word wrapping, paragraph direction
//     and alignment
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("RobotoFlex.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shaper, err := text.NewGoTextShaper(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := text.NewLayout("Hello, world", shaper, text.DefaultLayoutOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ip, err := textlerp.New(layout, shaper, text.NewBlender(), textlerp.Style{Size: 16})
//
// # Variable fonts
//
// Style variations select a Font instance of the source. The shaper drops
// variations for axes a source lacks, so a style can name axes of the
// primary font while static fallback fonts still shape. Use
// FontSource.Font for strict validation.
package text
