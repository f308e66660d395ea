// Package textlerp interpolates the style of a piece of text.
//
// # Overview
//
// An Interpolator shapes the same text twice, once under a base style and
// once under a target style, and draws a blend of the two at any progress in
// [0, 1]. The styles may differ in size, color, weight or other font
// variations, but never in the text itself or its line breaks.
//
// Shaping happens only when the layout or a style changes. Every frame only
// blends:
//   - glyph positions, linearly per glyph;
//   - fonts, once per font run, through a FontBlender;
//   - style size and color, once per line.
//
// # Quick Start
//
//	src, _ := text.NewFontSource(data)
//	shaper, _ := text.NewGoTextShaper(src)
//
//	opts := text.DefaultLayoutOptions()
//	opts.Style = textlerp.Style{Size: 48, Color: textlerp.Black,
//	    Variations: []textlerp.Variation{{Tag: "wght", Value: 400}}}
//	layout, _ := text.NewLayout("12:30", shaper, opts)
//
//	style := opts.Style
//	ip, err := textlerp.New(layout, shaper, text.NewBlender(), style)
//	if err != nil {
//	    return err
//	}
//
//	bold := style.Clone()
//	bold.Variations[0].Value = 700
//	if err := ip.ApplyTargetStyle(bold); err != nil {
//	    return err
//	}
//
//	for frame := 0; frame <= 30; frame++ {
//	    ip.SetProgress(float64(frame) / 30)
//	    ip.Draw(canvas)
//	}
//
// # Rebasing
//
// To start a new animation from the middle of a running one, call Rebase:
// the current blended state becomes the base state and the progress goes
// back to 0 with no visible change. Then apply a new target style.
//
// Rebased positions are a linear blend, not a shaping result, so applying a
// new base style after Rebase makes the glyphs jump.
//
// # Collaborators
//
// The engine only talks to its collaborators through interfaces: Layout,
// Shaper, FontBlender and Canvas. Package text provides a shaper, a layout
// and a font blender built on go-text/typesetting; package raster draws to an
// image and package recording records draw calls.
//
// # Errors
//
// Interpolation errors are broken preconditions: the two shaping results do
// not describe the same glyphs, or their fonts cannot be blended. They are
// *ReshapeError values wrapping one of the Err* sentinels. Shaper errors are
// wrapped with the line number and passed through. Either way the
// Interpolator is left as it was before the call.
package textlerp
