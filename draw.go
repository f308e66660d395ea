package textlerp

// Draw draws the text at the current progress.
//
// For every line the canvas is translated to the line's draw origin (the
// left edge for left-to-right paragraphs, the right edge otherwise) and
// baseline. Every font run is drawn with one DrawGlyphs call using the
// blended font of the run and the blended style of the line.
func (ip *Interpolator) Draw(c Canvas) {
	ip.drawStyles = lerpStyles(ip.drawStyles[:0], ip.base, ip.target, ip.progress)
	for i, l := range ip.lines {
		ip.drawLine(c, i, l, styleAt(ip.drawStyles, i))
	}
}

// drawLine draws the font runs of one line between Save and Restore.
func (ip *Interpolator) drawLine(c Canvas, lineNo int, l *line, style Style) {
	c.Save()
	defer c.Restore()

	c.Translate(drawOrigin(ip.layout, lineNo), ip.layout.LineBaseline(lineNo))
	for _, run := range l.runs {
		ip.drawFontRun(c, l, run, style)
	}
}

// drawFontRun blends the positions of one run into the scratch buffer and
// draws it with the blended font.
func (ip *Interpolator) drawFontRun(c Canvas, l *line, run FontRun, style Style) {
	ip.growScratch(run.Len())
	positions := l.blendRun(ip.scratch, run, ip.progress)
	font := ip.blender.Lerp(run.BaseFont, run.TargetFont, ip.progress)
	c.DrawGlyphs(l.glyphs[run.Start:run.End], positions, font, style)
}
