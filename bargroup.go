package askiplot

import "slices"

// BarGroup collects related bar series and renders them side by side on a
// target chart, one cluster per data index with a blank spacer column
// between clusters.
//
// The group borrows the target chart; nothing is drawn until [BarGroup.Commit].
//
// Example:
//
//	bc, _ := askiplot.NewBarChart(60, 20)
//	askiplot.NewBarGroup(bc).
//	    Add([]float64{4, 7, 2}, "before").
//	    Add([]float64{5, 9, 3}, "after").
//	    Commit().
//	    DrawBarLabels(askiplot.Offset{}).
//	    DrawLegend()
type BarGroup struct {
	target     *BarChart
	groupSize  int
	ngroups    int
	series     []barSeries
	brushes    []Brush
	brushIndex int
}

// barSeries is one added series, padded to the group length known at the
// time it was added.
type barSeries struct {
	label string
	brush Brush
	ydata []float64
}

// NewBarGroup creates a group rendering onto target. Series added without
// an explicit brush cycle through brushes in order; when none are given,
// [SymbolBrushes] supplies a set of visually distinct glyphs.
func NewBarGroup(target *BarChart, brushes ...Brush) *BarGroup {
	if len(brushes) == 0 {
		brushes = SymbolBrushes()
	}
	return &BarGroup{target: target, brushes: brushes}
}

// Add registers one series with its legend label. The optional brush
// overrides the automatic round-robin pick. Series shorter than the
// longest one are padded with zeros. The target's y-limits widen to cover
// the new data.
//
// Adding stops silently once one more series could not fit the target
// width, keeping the already-registered series intact.
func (g *BarGroup) Add(y []float64, label string, brush ...Brush) *BarGroup {
	// Layout after this add: one bar per series in each of the clusters,
	// plus a spacer between clusters.
	if (g.groupSize+2)*max(g.ngroups, len(y))-1 > g.target.Width() {
		return g
	}
	g.groupSize++
	g.ngroups = max(g.ngroups, len(y))

	padded := make([]float64, g.ngroups)
	copy(padded, y)

	b := Brush{}
	if len(brush) > 0 {
		b = brush[0]
	}
	if b.value == "" {
		b = g.brushes[g.brushIndex%len(g.brushes)]
		g.brushIndex++
	}

	if len(padded) > 0 {
		g.target.SetYLim(
			min(g.target.ylimBot, slices.Min(padded)),
			max(g.target.ylimTop, slices.Max(padded)),
		)
	}

	g.series = append(g.series, barSeries{label: label, brush: b, ydata: padded})
	g.target.AddLegendEntry(b, label)
	return g
}

// Commit lays out and draws the collected series with the default height
// resize factor of 0.8, leaving headroom above each bar for its label.
// It returns the target chart so drawing can continue on it.
func (g *BarGroup) Commit() *BarChart {
	return g.CommitResize(0.8)
}

// CommitResize is [BarGroup.Commit] with an explicit height resize
// factor. Bars are placed group by group, left to right: clusters hold
// one bar per series at the same data index, separated by one bar-width
// spacer. Bar width is the target width divided by the total bar count,
// spacers included.
func (g *BarGroup) CommitResize(heightResize float64) *BarChart {
	if g.groupSize == 0 || g.ngroups == 0 {
		return g.target
	}

	nBars := g.ngroups*g.groupSize + (g.ngroups - 1)
	width := g.target.Width() / nBars
	yb := g.target.ylimBot
	ystep := g.target.ystep()

	bars := make([]Bar, 0, nBars)
	col := 0
	for i := 0; i < g.ngroups; i++ {
		for j := 0; j < g.groupSize; j++ {
			s := g.series[j]
			v := 0.0
			if i < len(s.ydata) {
				v = s.ydata[i]
			}
			bars = append(bars, Bar{
				Name:   formatValue(v, g.target.labelPrecision),
				Height: int(float64(int((v-yb)/ystep)) * heightResize),
				Brush:  s.brush,
				Column: col,
				Width:  width,
			})
			col += width
		}
		if i != g.ngroups-1 {
			bars = append(bars, Bar{Empty: true})
			col += width
		}
	}

	g.target.plotBars(bars)
	return g.target
}

// GroupSize returns the number of series registered so far.
func (g *BarGroup) GroupSize() int { return g.groupSize }

// Groups returns the length of the longest registered series.
func (g *BarGroup) Groups() int { return g.ngroups }
