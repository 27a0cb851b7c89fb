package askiplot

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Bar describes one drawable bar in cell coordinates. A zero Brush means
// the chart's Area brush; Empty bars are placeholders that occupy layout
// space without being drawn.
type Bar struct {
	Column int
	Width  int
	Height int
	Name   string
	Brush  Brush
	Empty  bool
}

// BarChart is a canvas specialized for bar drawing. It embeds [Canvas], so
// the whole free-form drawing API remains available; bar-specific methods
// return *BarChart to keep chains typed.
//
// Example:
//
//	bc, err := askiplot.NewBarChart(60, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bc.PlotBarValues([]float64{3, 1, 4, 1, 5}, "digits", askiplot.Brush{}); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(bc.DrawBarLabels(askiplot.Offset{}).Serialize())
type BarChart struct {
	*Canvas
	bars           []Bar
	labelPrecision int
}

// NewBarChart creates a bar chart of the given size. Width and height
// follow the same rules as [New].
func NewBarChart(width, height int, opts ...Option) (*BarChart, error) {
	c, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &BarChart{Canvas: c}, nil
}

// SetLabelPrecision sets the number of fractional digits used when bar
// values are formatted into labels. Trailing fractional zeros are trimmed.
// Negative values are treated as zero, the default.
func (c *BarChart) SetLabelPrecision(digits int) *BarChart {
	c.labelPrecision = max(digits, 0)
	return c
}

// LabelPrecision returns the current label precision.
func (c *BarChart) LabelPrecision() int { return c.labelPrecision }

// DrawBar draws one bar with the Area brush. The bar occupies columns
// [col, col+width) with its body on rows [0, height) and a cap row at
// height.
func (c *BarChart) DrawBar(col, width, height int) *BarChart {
	return c.DrawBarBrush(col, width, height, c.palette.Get(BrushArea))
}

// DrawBarBrush draws one bar with an explicit body brush. Bars narrower
// than 3 columns are solid with a BorderTop cap; wider bars are framed:
// the first and last columns paint BorderLeft and BorderRight on the body
// rows, the cap row paints BorderTop across the full bar width, and the
// interior fills with brush. A zero width is a no-op and cells falling
// outside the canvas are clipped.
func (c *BarChart) DrawBarBrush(col, width, height int, brush Brush) *BarChart {
	if width == 0 {
		return c
	}

	top := c.palette.Get(BrushBorderTop)

	if width < 3 {
		for k := 0; k < width; k++ {
			for j := 0; j < height; j++ {
				c.setCell(col+k, j, brush.Cell())
			}
			c.setCell(col+k, height, top.Cell())
		}
		return c
	}

	left := c.palette.Get(BrushBorderLeft)
	right := c.palette.Get(BrushBorderRight)

	for k := 0; k < width; k++ {
		body := brush
		switch k {
		case 0:
			body = left
		case width - 1:
			body = right
		}
		for j := 0; j < height; j++ {
			c.setCell(col+k, j, body.Cell())
		}
		c.setCell(col+k, height, top.Cell())
	}
	return c
}

// DrawBars draws each bar in order. Empty bars are skipped and a zero
// Brush falls back to the Area brush.
func (c *BarChart) DrawBars(bars ...Bar) *BarChart {
	for _, b := range bars {
		if b.Empty {
			continue
		}
		brush := b.Brush
		if brush.value == "" {
			brush = c.palette.Get(BrushArea)
		}
		c.DrawBarBrush(b.Column, b.Width, b.Height, brush)
	}
	return c
}

// plotBars records the non-empty bars as the chart's current series and
// draws all of them. Label drawing reads the recorded set.
func (c *BarChart) plotBars(bars []Bar) *BarChart {
	c.bars = c.bars[:0]
	for _, b := range bars {
		if !b.Empty {
			c.bars = append(c.bars, b)
		}
	}
	return c.DrawBars(bars...)
}

// PlotBars plots one bar per (x, y) pair. The minimum gap between
// adjacent distinct x-values sets both the bar width and the automatic
// x-margin (falling back to 1 when all x-values coincide); y-limits are
// floored at 0 for non-negative data and the top gains 5% headroom. Each
// bar is labeled with its formatted value and the series registers one
// legend entry. A zero brush uses the Area brush.
//
// Mismatched slice lengths fail with [ErrInconsistentData]; empty input
// is a no-op.
func (c *BarChart) PlotBars(x, y []float64, label string, brush Brush) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x-values against %d y-values", ErrInconsistentData, len(x), len(y))
	}
	if len(x) == 0 {
		return nil
	}
	if brush.value == "" {
		brush = c.palette.Get(BrushArea)
	}

	xs := slices.Clone(x)
	slices.Sort(xs)
	d := minAdjacentGap(xs)

	c.SetXLim(xs[0]-d, xs[len(xs)-1]+d)
	c.SetYLim(min(0, slices.Min(y)), slices.Max(y)*1.05)

	xstep := c.xstep()
	ystep := c.ystep()
	barWidth := int(d / xstep)

	bars := make([]Bar, 0, len(x))
	for i := range x {
		bars = append(bars, Bar{
			Name:   formatValue(y[i], c.labelPrecision),
			Height: int((y[i] - c.ylimBot) / ystep),
			Column: int((x[i]-c.xlimLeft)/xstep - float64(barWidth)/2.0),
			Width:  barWidth,
			Brush:  brush,
		})
	}
	c.AddLegendEntry(brush, label)
	c.plotBars(bars)
	return nil
}

// PlotBarValues plots y-values at implicit x positions 1..n.
func (c *BarChart) PlotBarValues(y []float64, label string, brush Brush) error {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i + 1)
	}
	return c.PlotBars(x, y, label, brush)
}

// PlotBarMap plots data with keys as x-values, sorted ascending.
func (c *BarChart) PlotBarMap(data map[float64]float64, label string, brush Brush) error {
	xs := make([]float64, 0, len(data))
	for x := range data {
		xs = append(xs, x)
	}
	slices.Sort(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = data[x]
	}
	return c.PlotBars(xs, ys, label, brush)
}

// DrawBarLabels writes each recorded bar's label centered above it,
// displaced by offset. Labels are drawn without position adjustment so
// they stay attached to their bars even at the canvas edge.
func (c *BarChart) DrawBarLabels(offset Offset) *BarChart {
	for _, b := range c.bars {
		pos := Abs(b.Column+b.Width/2, b.Height).Plus(offset)
		c.DrawTextCenteredDontAdjust(b.Name, pos)
	}
	return c
}

// minAdjacentGap returns the smallest positive difference between
// neighboring values of a sorted slice, or 1 when every value coincides.
func minAdjacentGap(sorted []float64) float64 {
	d := 0.0
	for i := 1; i < len(sorted); i++ {
		if g := sorted[i] - sorted[i-1]; g > 0 && (d == 0 || g < d) {
			d = g
		}
	}
	if d == 0 {
		return 1
	}
	return d
}

// formatValue renders v with the given fractional precision, trimming
// trailing fractional zeros and a dangling decimal point.
func formatValue(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
