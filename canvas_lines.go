package askiplot

import "fmt"

// DrawLine draws a data-space segment from (x0, y0) to (x1, y1) with the
// Main brush, mapping through the current axis limits. The walk steps one
// cell at a time along the majority axis and interpolates the other
// continuously, so steep lines stay gapless. Cells that map outside the
// canvas are dropped.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64) *Canvas {
	b := c.palette.Get(BrushMain)
	xstep, ystep := c.xstep(), c.ystep()

	toCol := func(x float64) int { return int((x - c.xlimLeft) / xstep) }
	toRow := func(y float64) int { return int((y - c.ylimBot) / ystep) }

	colBeg, rowBeg := toCol(x0), toRow(y0)
	colEnd, rowEnd := toCol(x1), toRow(y1)

	deltaCol := colEnd - colBeg
	deltaRow := rowEnd - rowBeg
	n := max(absInt(deltaCol), absInt(deltaRow)) + 1

	if absInt(deltaCol) < absInt(deltaRow) {
		xAdv := (x1 - x0) / float64(n)
		rowAdv := 1
		if rowBeg >= rowEnd {
			rowAdv = -1
		}
		x := x0
		for k := 0; k < n; k++ {
			c.Set(toCol(x), rowBeg+k*rowAdv, b)
			x += xAdv
		}
	} else {
		yAdv := (y1 - y0) / float64(n)
		colAdv := 1
		if colBeg >= colEnd {
			colAdv = -1
		}
		y := y0
		for k := 0; k < n; k++ {
			c.Set(colBeg+k*colAdv, toRow(y), b)
			y += yAdv
		}
	}
	return c
}

// DrawLineAt draws a segment between two cell-space positions, converting
// them through the axis limits so the walk shares DrawLine's rasterization.
func (c *Canvas) DrawLineAt(begin, end Position) *Canvas {
	xstep, ystep := c.xstep(), c.ystep()
	toX := func(col int) float64 { return float64(col)*xstep + c.xlimLeft }
	toY := func(row int) float64 { return float64(row)*ystep + c.ylimBot }

	c0, r0 := c.resolve(begin)
	c1, r1 := c.resolve(end)
	return c.DrawLine(toX(c0), toY(r0), toX(c1), toY(r1))
}

// DrawLineHorizontalAtRow paints row with the LineHorizontal brush.
// Out-of-range rows are ignored.
func (c *Canvas) DrawLineHorizontalAtRow(row int) *Canvas {
	if row < 0 || row >= c.height {
		return c
	}
	b := c.palette.Get(BrushLineHorizontal)
	for i := 0; i < c.width; i++ {
		c.Set(i, row, b)
	}
	return c
}

// DrawLineHorizontalAtRatio paints the row at ratio of the canvas height,
// ratio clamped to [0, 1]. A ratio of 1 lands one past the top row and is
// ignored.
func (c *Canvas) DrawLineHorizontalAtRatio(ratio float64) *Canvas {
	return c.DrawLineHorizontalAtRow(int(float64(c.height) * clamp01(ratio)))
}

// DrawLineHorizontalAtY paints the row containing data-space y. Values on
// or outside the y limits are ignored.
func (c *Canvas) DrawLineHorizontalAtY(y float64) *Canvas {
	if c.ylimBot < y && y < c.ylimTop {
		return c.DrawLineHorizontalAtRow(int((y - c.ylimBot) / c.ystep()))
	}
	return c
}

// DrawLineVerticalAtCol paints col with the LineVertical brush.
// Out-of-range columns are ignored.
func (c *Canvas) DrawLineVerticalAtCol(col int) *Canvas {
	if col < 0 || col >= c.width {
		return c
	}
	b := c.palette.Get(BrushLineVertical)
	for j := 0; j < c.height; j++ {
		c.Set(col, j, b)
	}
	return c
}

// DrawLineVerticalAtRatio paints the column at ratio of the canvas width,
// ratio clamped to [0, 1].
func (c *Canvas) DrawLineVerticalAtRatio(ratio float64) *Canvas {
	return c.DrawLineVerticalAtCol(int(float64(c.width) * clamp01(ratio)))
}

// DrawLineVerticalAtX paints the column containing data-space x. Values on
// or outside the x limits are ignored.
func (c *Canvas) DrawLineVerticalAtX(x float64) *Canvas {
	if c.xlimLeft < x && x < c.xlimRight {
		return c.DrawLineVerticalAtCol(int((x - c.xlimLeft) / c.xstep()))
	}
	return c
}

// DrawPoint paints the cell containing data-space (x, y) with the Main
// brush. Points on or outside the limits are ignored.
func (c *Canvas) DrawPoint(x, y float64) *Canvas {
	if c.xlimLeft < x && x < c.xlimRight && c.ylimBot < y && y < c.ylimTop {
		c.Set(int((x-c.xlimLeft)/c.xstep()), int((y-c.ylimBot)/c.ystep()), c.palette.Get(BrushMain))
	}
	return c
}

// DrawPoints fits the axis limits to the data per the AutoLimit policy and
// paints one Main-brush point per (x[i], y[i]) pair. Mismatched series
// lengths fail with ErrInconsistentData.
func (c *Canvas) DrawPoints(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrInconsistentData, len(x), len(y))
	}
	c.FitLimits(x, y)
	b := c.palette.Get(BrushMain)
	for i := range x {
		if c.xlimLeft < x[i] && x[i] < c.xlimRight && c.ylimBot < y[i] && y[i] < c.ylimTop {
			c.Set(int((x[i]-c.xlimLeft)/c.xstep()), int((y[i]-c.ylimBot)/c.ystep()), b)
		}
	}
	return nil
}

// PlotData scatter-plots a paired series and registers a legend entry for
// it under label.
func (c *Canvas) PlotData(x, y []float64, label string) error {
	if err := c.DrawPoints(x, y); err != nil {
		return err
	}
	c.AddLegendEntry(c.palette.Get(BrushMain), label)
	return nil
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
