package textlerp

// FontRun is a maximal range of glyphs in a line that share one
// (base font, target font) pair.
type FontRun struct {
	// Start is the first glyph index of the run.
	Start int

	// End is one past the last glyph index of the run.
	End int

	// BaseFont and TargetFont are the fonts of every glyph in the run.
	BaseFont   Font
	TargetFont Font
}

// Len returns the number of glyphs in the run.
func (r FontRun) Len() int {
	return r.End - r.Start
}

// segmentFontRuns partitions the glyphs of a line into font runs.
//
// A run ends exactly where the base font changes, and the target font must
// change at the same glyph; otherwise base and target runs would not line up.
// The fonts of every run must be interpolation-compatible. base and target
// must have the same glyph count. It also returns the length of the longest run.
func segmentFontRuns(base, target *ShapedRun, blender FontBlender) ([]FontRun, int, error) {
	n := base.GlyphCount()
	if n == 0 {
		return nil, 0, nil
	}

	var (
		runs    []FontRun
		longest int
		start   int
	)
	baseFont := base.Glyphs[0].Font
	targetFont := target.Glyphs[0].Font
	if !blender.CanInterpolate(baseFont, targetFont) {
		return nil, 0, glyphError(0, ErrIncompatibleFonts)
	}

	for i := 1; i < n; i++ {
		nextBase := base.Glyphs[i].Font
		nextTarget := target.Glyphs[i].Font
		baseChanged := !sameFont(baseFont, nextBase)
		if baseChanged == sameFont(targetFont, nextTarget) {
			return nil, 0, glyphError(i, ErrAsymmetricFontChange)
		}
		if !baseChanged {
			continue
		}

		runs = append(runs, FontRun{Start: start, End: i, BaseFont: baseFont, TargetFont: targetFont})
		longest = max(longest, i-start)
		baseFont, targetFont, start = nextBase, nextTarget, i
		if !blender.CanInterpolate(baseFont, targetFont) {
			return nil, 0, glyphError(i, ErrIncompatibleFonts)
		}
	}

	runs = append(runs, FontRun{Start: start, End: n, BaseFont: baseFont, TargetFont: targetFont})
	longest = max(longest, n-start)
	return runs, longest, nil
}
