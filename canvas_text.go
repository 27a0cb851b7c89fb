package askiplot

// DrawText writes text horizontally, one glyph per cell, left to right from
// the resolved position. The position is first pulled on-canvas so the
// whole text fits where possible; text longer than the canvas is truncated
// at the edge, never wrapped. Each glyph cell is anonymous, so fusing with
// blank transparency treats lettering as foreground. Bytes that cannot be
// shown (anything non-printable beyond tab, CR and LF, which become spaces)
// are skipped.
func (c *Canvas) DrawText(text string, pos Position) *Canvas {
	return c.drawText(text, pos, true)
}

// DrawTextDontAdjust writes text at the resolved position without pulling
// it on-canvas; off-canvas glyphs are clipped.
func (c *Canvas) DrawTextDontAdjust(text string, pos Position) *Canvas {
	return c.drawText(text, pos, false)
}

// DrawTextCentered writes text centered on the resolved position.
func (c *Canvas) DrawTextCentered(text string, pos Position) *Canvas {
	return c.drawText(text, pos.Minus(Offset{Col: len(text) / 2}), true)
}

// DrawTextCenteredDontAdjust is DrawTextCentered without boundary
// adjustment.
func (c *Canvas) DrawTextCenteredDontAdjust(text string, pos Position) *Canvas {
	return c.drawText(text, pos.Minus(Offset{Col: len(text) / 2}), false)
}

func (c *Canvas) drawText(text string, pos Position, adjust bool) *Canvas {
	col, row := c.resolve(pos)
	if adjust {
		col, row = adjustForBox(col, row, len(text), 1, false, c.width, c.height)
	}
	if row < 0 || row >= c.height {
		return c
	}
	n := min(c.width-col, len(text))
	for i := -min(0, col); i < n; i++ {
		c.setGlyphCell(col+i, row, text[i])
	}
	return c
}

// DrawTextVertical writes text downward, one glyph per row starting at the
// resolved position. Clipping and adjustment mirror DrawText along the row
// axis.
func (c *Canvas) DrawTextVertical(text string, pos Position) *Canvas {
	return c.drawTextVertical(text, pos, true)
}

// DrawTextVerticalDontAdjust is DrawTextVertical without boundary
// adjustment.
func (c *Canvas) DrawTextVerticalDontAdjust(text string, pos Position) *Canvas {
	return c.drawTextVertical(text, pos, false)
}

// DrawTextVerticalCentered writes text downward, centered on the resolved
// position.
func (c *Canvas) DrawTextVerticalCentered(text string, pos Position) *Canvas {
	return c.drawTextVertical(text, pos.Plus(Offset{Row: len(text) / 2}), true)
}

// DrawTextVerticalCenteredDontAdjust is DrawTextVerticalCentered without
// boundary adjustment.
func (c *Canvas) DrawTextVerticalCenteredDontAdjust(text string, pos Position) *Canvas {
	return c.drawTextVertical(text, pos.Plus(Offset{Row: len(text) / 2}), false)
}

func (c *Canvas) drawTextVertical(text string, pos Position, adjust bool) *Canvas {
	col, row := c.resolve(pos)
	if adjust {
		col, row = adjustForBox(col, row, 1, len(text), false, c.width, c.height)
	}
	if col < 0 || col >= c.width {
		return c
	}
	n := min(row+1, len(text))
	for j := max(row-c.height+1, 0); j < n; j++ {
		c.setGlyphCell(col, row-j, text[j])
	}
	return c
}

// setGlyphCell paints one anonymous text glyph, normalizing the byte the
// way brush values are normalized.
func (c *Canvas) setGlyphCell(col, row int, glyph byte) {
	v, err := normalizeBrushValue(string(glyph))
	if err != nil {
		return
	}
	c.setCell(col, row, Cell{Glyph: v})
}

// DrawTitle writes the canvas title centered on the top row.
func (c *Canvas) DrawTitle() *Canvas {
	return c.DrawTextCenteredDontAdjust(c.title, North)
}

// DrawLegend draws the legend box at NorthEast. With no registered entries
// it draws nothing.
func (c *Canvas) DrawLegend() *Canvas {
	return c.DrawLegendAt(NorthEast)
}

// DrawLegendAt draws a bordered box listing every legend entry as
// "glyph label", earliest entry on top. The box is sized to the longest
// label plus padding, anchored at pos and pulled on-canvas.
func (c *Canvas) DrawLegendAt(pos Position) *Canvas {
	if len(c.legend) == 0 {
		return c
	}

	textWidth := 0
	for _, e := range c.legend {
		textWidth = max(textWidth, len(e.Label))
	}
	boxW := textWidth + 6
	boxH := len(c.legend) + 2

	col, row := c.resolve(CalcBoxPosition(pos, boxW, boxH))
	col, row = adjustForBox(col, row, boxW, boxH, true, c.width, c.height)

	top := c.palette.Get(BrushBorderTop)
	bottom := c.palette.Get(BrushBorderBottom)
	left := c.palette.Get(BrushBorderLeft)
	right := c.palette.Get(BrushBorderRight)

	for i := col; i < col+boxW; i++ {
		c.Set(i, row, bottom)
		c.Set(i, row+boxH-1, top)
	}
	for j := row; j < row+boxH-1; j++ {
		c.Set(col, j, left)
		c.Set(col+boxW-1, j, right)
	}

	for i, e := range c.legend {
		c.DrawText(e.Brush.Value()+" "+e.Label, Abs(col+2, row+boxH-2-i))
	}
	return c
}
