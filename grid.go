package askiplot

import (
	"fmt"
	"sort"
)

// Grid arranges externally-owned plots in rows and columns over one
// canvas. Cells hold references: the grid never copies a sub-plot and
// never takes ownership, so callers must keep assigned plots alive for as
// long as the grid reads them. Unassigned cells show the grid's own
// backing canvas, which the embedded [Canvas] drawing methods target.
//
// Grid row 0 is the top band, matching reading order.
//
// Example:
//
//	g, _ := askiplot.NewGrid(2, 2, 80, 24)
//	g.SetInRowMajor(topLeft, topRight, bottomLeft, bottomRight)
//	fmt.Print(g.Serialize())
type Grid struct {
	*Canvas
	gridRows   int
	gridCols   int
	plots      []Plot
	colWidths  []int
	rowHeights []int

	// colStarts[i] is the first canvas column of column band i;
	// bottomUp[k] is the first canvas row of the k-th band from the
	// bottom. Both carry a final total-size entry for binary search.
	colStarts []int
	bottomUp  []int
}

// NewGrid creates a gridRows x gridCols grid over a width x height
// canvas (zero dimensions probe the terminal, as in [New]). Band sizes
// come from integer division with the remainder spread over the first
// bands, so they differ by at most one cell.
func NewGrid(gridRows, gridCols, width, height int, opts ...Option) (*Grid, error) {
	if gridRows < 1 || gridCols < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidPlotSize, gridRows, gridCols)
	}
	c, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}

	widths := make([]int, gridCols)
	divW, remW := c.width/gridCols, c.width%gridCols
	for i := range widths {
		widths[i] = divW
		if i < remW {
			widths[i]++
		}
	}
	heights := make([]int, gridRows)
	divH, remH := c.height/gridRows, c.height%gridRows
	for i := range heights {
		heights[i] = divH
		if i < remH {
			heights[i]++
		}
	}
	return newGrid(c, widths, heights), nil
}

// NewGridSized creates a grid with explicit band sizes. The canvas
// dimensions are the sums of colWidths and rowHeights; every band must be
// at least one cell.
func NewGridSized(colWidths, rowHeights []int, opts ...Option) (*Grid, error) {
	if len(colWidths) == 0 || len(rowHeights) == 0 {
		return nil, fmt.Errorf("%w: empty grid bands", ErrInvalidPlotSize)
	}
	width := 0
	for _, w := range colWidths {
		if w < 1 {
			return nil, fmt.Errorf("%w: column band width %d", ErrInvalidPlotSize, w)
		}
		width += w
	}
	height := 0
	for _, h := range rowHeights {
		if h < 1 {
			return nil, fmt.Errorf("%w: row band height %d", ErrInvalidPlotSize, h)
		}
		height += h
	}
	c, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	widths := make([]int, len(colWidths))
	copy(widths, colWidths)
	heights := make([]int, len(rowHeights))
	copy(heights, rowHeights)
	return newGrid(c, widths, heights), nil
}

// newGrid wires the band tables. widths and heights must sum to the
// canvas dimensions.
func newGrid(c *Canvas, widths, heights []int) *Grid {
	g := &Grid{
		Canvas:     c,
		gridRows:   len(heights),
		gridCols:   len(widths),
		plots:      make([]Plot, len(widths)*len(heights)),
		colWidths:  widths,
		rowHeights: heights,
	}
	g.colStarts = make([]int, g.gridCols+1)
	for i, w := range widths {
		g.colStarts[i+1] = g.colStarts[i] + w
	}
	g.bottomUp = make([]int, g.gridRows+1)
	for k := 0; k < g.gridRows; k++ {
		g.bottomUp[k+1] = g.bottomUp[k] + heights[g.gridRows-1-k]
	}
	return g
}

// GridRows returns the number of row bands.
func (g *Grid) GridRows() int { return g.gridRows }

// GridColumns returns the number of column bands.
func (g *Grid) GridColumns() int { return g.gridCols }

// SetAt assigns p to the grid cell at (gridRow, gridCol); nil clears the
// cell. Out-of-range coordinates are ignored.
func (g *Grid) SetAt(gridRow, gridCol int, p Plot) *Grid {
	if gridRow < 0 || gridRow >= g.gridRows || gridCol < 0 || gridCol >= g.gridCols {
		Logger().Debug("askiplot: grid SetAt ignored", "row", gridRow, "col", gridCol)
		return g
	}
	g.plots[gridCol+gridRow*g.gridCols] = p
	return g
}

// PlotAt returns the plot assigned at (gridRow, gridCol), or nil when the
// cell is unassigned or out of range.
func (g *Grid) PlotAt(gridRow, gridCol int) Plot {
	if gridRow < 0 || gridRow >= g.gridRows || gridCol < 0 || gridCol >= g.gridCols {
		return nil
	}
	return g.plots[gridCol+gridRow*g.gridCols]
}

// SetInRowMajor assigns plots left to right, top to bottom. Plots beyond
// the grid capacity are ignored.
func (g *Grid) SetInRowMajor(plots ...Plot) *Grid {
	n := min(len(plots), len(g.plots))
	for idx := 0; idx < n; idx++ {
		g.SetAt(idx/g.gridCols, idx%g.gridCols, plots[idx])
	}
	return g
}

// SetInColumnMajor assigns plots top to bottom, left to right. Plots
// beyond the grid capacity are ignored.
func (g *Grid) SetInColumnMajor(plots ...Plot) *Grid {
	n := min(len(plots), len(g.plots))
	for idx := 0; idx < n; idx++ {
		g.SetAt(idx%g.gridRows, idx/g.gridRows, plots[idx])
	}
	return g
}

// At reads the cell at canvas coordinates (col, row), forwarding into the
// sub-plot whose band contains the cell with translated coordinates.
// Unassigned bands fall back to the grid's own backing canvas.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return g.palette.blankCell()
	}

	i := sort.Search(g.gridCols, func(i int) bool { return g.colStarts[i+1] > col })
	k := sort.Search(g.gridRows, func(k int) bool { return g.bottomUp[k+1] > row })
	j := g.gridRows - 1 - k

	p := g.plots[i+j*g.gridCols]
	if p == nil {
		return g.cells[col*g.height+row]
	}
	return p.At(col-g.colStarts[i], row-g.bottomUp[k])
}

// Serialize renders the composed grid, sub-plots included.
func (g *Grid) Serialize() string { return serialize(g) }

func (g *Grid) String() string { return g.Serialize() }
