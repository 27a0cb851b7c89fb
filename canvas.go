package askiplot

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Cell is one addressable character position on a canvas. Style names the
// brush that owns the cell ("" for anonymous glyphs such as rendered text);
// Glyph is the 1-2 byte value the serializer emits. A drawn cell's glyph is
// never empty.
type Cell struct {
	Style string
	Glyph string
}

// Blank reports whether the cell is owned by the Blank style. Anonymous
// cells are never blank, whatever their glyph.
func (c Cell) Blank() bool { return c.Style == BrushBlank }

// Plot is the read surface shared by Canvas, BarChart, Histogram and Grid.
// Fuse and Serialize accept any Plot, so composed and derived plots overlay
// onto each other freely.
type Plot interface {
	Width() int
	Height() int
	// At returns the cell at (col, row), row 0 at the bottom.
	// Out-of-bounds coordinates yield a blank cell.
	At(col, row int) Cell
}

// Borders is a bitmask of canvas sides, used both to pick which borders
// DrawBorders paints and to pick which axis bounds AutoLimit fits to data.
type Borders uint8

const (
	BorderLeft Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderTop

	BorderAll = BorderLeft | BorderRight | BorderBottom | BorderTop
)

const (
	defaultXMargin = 0.01
	defaultYMargin = 0.02
)

// Canvas is a fixed-size grid of cells with a style palette, axis limits
// for the data-space primitives, a title and legend metadata. Drawing
// methods mutate the canvas in place and return it, so calls chain:
//
//	c, _ := askiplot.New(60, 20)
//	c.DrawBorders(askiplot.BorderAll).
//		DrawLine(0, 0, 1, 1).
//		DrawText("hello", askiplot.Center)
//	fmt.Print(c.Serialize())
//
// The size is immutable after construction; enlarging means creating a new
// canvas and fusing the old one in. Canvases never share cell storage and
// are not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	cells  []Cell

	palette *Palette
	title   string
	legend  []LegendEntry

	autoLimit Borders
	xlimLeft  float64
	xlimRight float64
	ylimBot   float64
	ylimTop   float64
	xMargin   float64
	yMargin   float64
}

// LegendEntry is one line of a plot's legend: the brush that identifies a
// data series and its label. Entries are append-only, in plot order.
type LegendEntry struct {
	Brush Brush
	Label string
}

// New creates a blank width x height canvas. Negative dimensions fail with
// ErrInvalidPlotSize. A zero width or height is filled in from the
// configured size provider (the terminal size by default, keeping one row
// free for the prompt); see [WithSizeProvider].
func New(width, height int, opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newCanvas(width, height, o)
}

func newCanvas(width, height int, o options) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidPlotSize, width, height)
	}
	if width == 0 || height == 0 {
		pw, ph := o.sizeProvider()
		if width == 0 {
			width = pw
		}
		if height == 0 {
			height = ph - 1
		}
		if width < 0 || height < 0 {
			return nil, fmt.Errorf("%w: %dx%d from size provider", ErrInvalidPlotSize, width, height)
		}
	}

	c := &Canvas{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		autoLimit: BorderAll,
		xlimLeft:  0,
		xlimRight: 1,
		ylimBot:   0,
		ylimTop:   1,
		xMargin:   defaultXMargin,
		yMargin:   defaultYMargin,
	}
	if o.palette != nil {
		c.palette = o.palette.Clone()
	} else {
		c.palette = NewPaletteWith(o.defaults)
	}
	c.Clear()
	return c, nil
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// At returns the cell at (col, row). Out-of-bounds reads yield a blank cell.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return c.palette.blankCell()
	}
	return c.cells[col*c.height+row]
}

// Set paints the cell at (col, row) with b. Out-of-bounds writes are
// silently dropped.
func (c *Canvas) Set(col, row int, b Brush) *Canvas {
	c.setCell(col, row, b.Cell())
	return c
}

func (c *Canvas) setCell(col, row int, cell Cell) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	c.cells[col*c.height+row] = cell
}

// Fill paints every cell with b.
func (c *Canvas) Fill(b Brush) *Canvas {
	cell := b.Cell()
	for i := range c.cells {
		c.cells[i] = cell
	}
	return c
}

// FillMain fills the canvas with the Main brush.
func (c *Canvas) FillMain() *Canvas {
	return c.Fill(c.palette.Get(BrushMain))
}

// Clear fills the canvas with the Blank brush.
func (c *Canvas) Clear() *Canvas {
	return c.Fill(c.palette.Get(BrushBlank))
}

// DrawBorders paints the selected canvas edges, each with its dedicated
// border brush (BorderTop, BorderBottom, BorderLeft, BorderRight).
func (c *Canvas) DrawBorders(sides Borders) *Canvas {
	if sides&BorderLeft != 0 {
		b := c.palette.Get(BrushBorderLeft)
		for j := 0; j < c.height; j++ {
			c.Set(0, j, b)
		}
	}
	if sides&BorderRight != 0 {
		b := c.palette.Get(BrushBorderRight)
		for j := 0; j < c.height; j++ {
			c.Set(c.width-1, j, b)
		}
	}
	if sides&BorderBottom != 0 {
		b := c.palette.Get(BrushBorderBottom)
		for i := 0; i < c.width; i++ {
			c.Set(i, 0, b)
		}
	}
	if sides&BorderTop != 0 {
		b := c.palette.Get(BrushBorderTop)
		for i := 0; i < c.width; i++ {
			c.Set(i, c.height-1, b)
		}
	}
	return c
}

// DrawBox fills the inclusive rectangle spanned by two corners with b.
// Corners may be given in either order; the rectangle is clipped to the
// canvas.
func (c *Canvas) DrawBox(corner1, corner2 Position, b Brush) *Canvas {
	colLo, rowLo, colHi, rowHi := c.clipRect(corner1, corner2)
	for i := colLo; i <= colHi; i++ {
		for j := rowLo; j <= rowHi; j++ {
			c.Set(i, j, b)
		}
	}
	return c
}

// DrawBoxArea is DrawBox with the Area brush.
func (c *Canvas) DrawBoxArea(corner1, corner2 Position) *Canvas {
	return c.DrawBox(corner1, corner2, c.palette.Get(BrushArea))
}

// clipRect resolves two corners and returns the on-canvas inclusive
// rectangle between them. An empty intersection yields hi < lo.
func (c *Canvas) clipRect(corner1, corner2 Position) (colLo, rowLo, colHi, rowHi int) {
	c1, r1 := c.resolve(corner1)
	c2, r2 := c.resolve(corner2)
	colLo = max(0, min(c1, c2))
	rowLo = max(0, min(r1, r2))
	colHi = min(c.width-1, max(c1, c2))
	rowHi = min(c.height-1, max(r1, r2))
	return colLo, rowLo, colHi, rowHi
}

func (c *Canvas) resolve(p Position) (col, row int) {
	return p.Resolve(c.width, c.height)
}

// Redraw re-resolves every named cell's glyph from the palette. Call it
// after SetBrush to restyle content that is already drawn; anonymous cells
// (text, gamma output) keep their glyphs.
func (c *Canvas) Redraw() *Canvas {
	for i := range c.cells {
		if name := c.cells[i].Style; name != "" {
			c.cells[i] = c.palette.Get(name).Cell()
		}
	}
	return c
}

// IsLike reports whether p has the same dimensions as the canvas.
func (c *Canvas) IsLike(p Plot) bool {
	return c.width == p.Width() && c.height == p.Height()
}

// BlankLike returns a new blank canvas with p's dimensions and the default
// palette.
func BlankLike(p Plot) *Canvas {
	return newCanvasSized(p.Width(), p.Height(), NewPalette())
}

// Clone returns an independent deep copy of the canvas: cells, palette,
// limits, title and legend.
func (c *Canvas) Clone() *Canvas {
	out := *c
	out.cells = make([]Cell, len(c.cells))
	copy(out.cells, c.cells)
	out.palette = c.palette.Clone()
	out.legend = make([]LegendEntry, len(c.legend))
	copy(out.legend, c.legend)
	return &out
}

// Palette returns the canvas's style registry for direct manipulation.
func (c *Canvas) Palette() *Palette { return c.palette }

// SetBrush registers or overwrites a named style. Invalid names or values
// are ignored here so drawing chains stay fluent; use [Palette.Set] for the
// checked form.
func (c *Canvas) SetBrush(name, value string) *Canvas {
	if err := c.palette.Set(name, value); err != nil {
		Logger().Debug("askiplot: SetBrush ignored", "name", name, "err", err)
	}
	return c
}

// SetMainBrush sets the glyph of the Main style.
func (c *Canvas) SetMainBrush(value string) *Canvas {
	return c.SetBrush(BrushMain, value)
}

// ResetBrushes restores the nine well-known styles to their defaults.
func (c *Canvas) ResetBrushes() *Canvas {
	c.palette.Reset()
	return c
}

// Brush returns the brush registered under name, or the Blank brush when
// unknown.
func (c *Canvas) Brush(name string) Brush {
	return c.palette.Get(name)
}

// SetTitle sets the title drawn by DrawTitle.
func (c *Canvas) SetTitle(title string) *Canvas {
	c.title = title
	return c
}

// Title returns the canvas title.
func (c *Canvas) Title() string { return c.title }

// Legend returns the registered legend entries in plot order.
func (c *Canvas) Legend() []LegendEntry {
	out := make([]LegendEntry, len(c.legend))
	copy(out, c.legend)
	return out
}

// AddLegendEntry appends a legend line for a data series.
func (c *Canvas) AddLegendEntry(b Brush, label string) *Canvas {
	c.legend = append(c.legend, LegendEntry{Brush: b, Label: label})
	return c
}

// AutoLimit selects which axis bounds FitLimits derives from data. The
// default is BorderAll: all four bounds fitted.
func (c *Canvas) AutoLimit(sides Borders) *Canvas {
	c.autoLimit = sides
	return c
}

// XLim returns the data-space x axis limits.
func (c *Canvas) XLim() (left, right float64) { return c.xlimLeft, c.xlimRight }

// YLim returns the data-space y axis limits.
func (c *Canvas) YLim() (bottom, top float64) { return c.ylimBot, c.ylimTop }

// SetXLim sets both x limits. Ignored unless left < right.
func (c *Canvas) SetXLim(left, right float64) *Canvas {
	if left < right {
		c.xlimLeft, c.xlimRight = left, right
	}
	return c
}

// SetYLim sets both y limits. Ignored unless bottom < top.
func (c *Canvas) SetYLim(bottom, top float64) *Canvas {
	if bottom < top {
		c.ylimBot, c.ylimTop = bottom, top
	}
	return c
}

// SetXLimLeft sets the left x limit. Ignored unless it stays below the
// right limit.
func (c *Canvas) SetXLimLeft(left float64) *Canvas {
	if left < c.xlimRight {
		c.xlimLeft = left
	}
	return c
}

// SetXLimRight sets the right x limit. Ignored unless it stays above the
// left limit.
func (c *Canvas) SetXLimRight(right float64) *Canvas {
	if c.xlimLeft < right {
		c.xlimRight = right
	}
	return c
}

// SetYLimBottom sets the bottom y limit. Ignored unless it stays below the
// top limit.
func (c *Canvas) SetYLimBottom(bottom float64) *Canvas {
	if bottom < c.ylimTop {
		c.ylimBot = bottom
	}
	return c
}

// SetYLimTop sets the top y limit. Ignored unless it stays above the bottom
// limit.
func (c *Canvas) SetYLimTop(top float64) *Canvas {
	if c.ylimBot < top {
		c.ylimTop = top
	}
	return c
}

// FitLimits fits the axis bounds enabled by AutoLimit to the extent of the
// given data, expanding by the axis margins (1% in x, 2% in y). Data-space
// plotting calls this before painting; it is exported so callers can fit
// limits to one series and then overlay others on the same scale.
func (c *Canvas) FitLimits(x, y []float64) *Canvas {
	xm := func() float64 { return math.Abs((c.xlimRight - c.xlimLeft) * c.xMargin) }
	ym := func() float64 { return math.Abs((c.ylimTop - c.ylimBot) * c.yMargin) }

	if len(x) > 0 {
		lo, hi := slices.Min(x), slices.Max(x)
		switch {
		case c.autoLimit&BorderLeft != 0 && c.autoLimit&BorderRight != 0:
			c.xlimLeft, c.xlimRight = lo, hi
			m := xm()
			c.xlimLeft -= m
			c.xlimRight += m
		case c.autoLimit&BorderLeft != 0:
			c.xlimLeft = lo
			c.xlimLeft -= xm()
		case c.autoLimit&BorderRight != 0:
			c.xlimRight = hi
			c.xlimRight += xm()
		}
	}
	if len(y) > 0 {
		lo, hi := slices.Min(y), slices.Max(y)
		switch {
		case c.autoLimit&BorderBottom != 0 && c.autoLimit&BorderTop != 0:
			c.ylimBot, c.ylimTop = lo, hi
			m := ym()
			c.ylimBot -= m
			c.ylimTop += m
		case c.autoLimit&BorderBottom != 0:
			c.ylimBot = lo
			c.ylimBot -= ym()
		case c.autoLimit&BorderTop != 0:
			c.ylimTop = hi
			c.ylimTop += ym()
		}
	}
	return c
}

// xstep and ystep are the data-space widths of one cell.
func (c *Canvas) xstep() float64 { return (c.xlimRight - c.xlimLeft) / float64(c.width) }
func (c *Canvas) ystep() float64 { return (c.ylimTop - c.ylimBot) / float64(c.height) }

// Serialize renders the canvas as text: rows from the top visual line
// (row height-1) down to row 0, each cell contributing its glyph, every row
// terminated by a newline. Serializing is non-destructive and repeatable.
func (c *Canvas) Serialize() string { return serialize(c) }

// String returns the serialized canvas.
func (c *Canvas) String() string { return serialize(c) }

func serialize(p Plot) string {
	w, h := p.Width(), p.Height()
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for j := h - 1; j >= 0; j-- {
		for i := 0; i < w; i++ {
			sb.WriteString(p.At(i, j).Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

