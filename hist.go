package askiplot

import (
	"slices"
	"strconv"
)

// Histogram is a bar chart that bins raw samples. It embeds [BarChart],
// so bar and canvas methods remain available.
//
// Example:
//
//	h, _ := askiplot.NewHistogram(64, 20)
//	h.PlotHistogram(samples, "latency ms").DrawLegend()
//	fmt.Print(h.Serialize())
type Histogram struct {
	*BarChart
	nbins int
}

// NewHistogram creates a histogram of the given size. The bin count
// starts at the canvas width, one column per bin.
func NewHistogram(width, height int, opts ...Option) (*Histogram, error) {
	bc, err := NewBarChart(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Histogram{BarChart: bc, nbins: bc.Width()}, nil
}

// SetBins caps the number of bins used by the next plot. Values below 1
// are ignored.
func (h *Histogram) SetBins(n int) *Histogram {
	if n < 1 {
		Logger().Debug("askiplot: SetBins ignored", "bins", n)
		return h
	}
	h.nbins = n
	return h
}

// Bins returns the current bin count.
func (h *Histogram) Bins() int { return h.nbins }

// PlotHistogram bins the samples and draws one bar per bin with the
// default height resize factor of 0.8.
func (h *Histogram) PlotHistogram(data []float64, label string) *Histogram {
	return h.PlotHistogramResize(data, label, 0.8)
}

// PlotHistogramResize bins the samples and draws one bar per bin, scaling
// the tallest bin to the canvas height times min(1, heightResize).
//
// The bin count is capped at the number of distinct samples, and the cap
// sticks for later plots. Bin boundaries are centered on the sample range:
// the x-axis spans [min-step/2, max+step/2] with step=(max-min)/(bins-1),
// so every sample lands inside a bin and the per-bin counts always sum to
// the sample count. Empty input draws nothing.
func (h *Histogram) PlotHistogramResize(data []float64, label string, heightResize float64) *Histogram {
	if len(data) == 0 {
		return h
	}

	distinct := countDistinct(data)
	h.nbins = min(h.nbins, distinct)
	if h.nbins < 1 {
		return h
	}

	counts := make([]int, h.nbins)
	if h.nbins == 1 {
		// All samples share one value: a single full-width bin.
		counts[0] = len(data)
	} else {
		minV := slices.Min(data)
		maxV := slices.Max(data)
		step := (maxV - minV) / float64(h.nbins-1)
		h.SetXLim(minV-step/2, maxV+step/2)
		left := h.xlimLeft
		for _, v := range data {
			idx := int((v - left) / step)
			counts[min(max(idx, 0), h.nbins-1)]++
		}
	}

	maxCount := slices.Max(counts)
	factor := min(1.0, heightResize)
	binWidth := h.Width() / h.nbins
	brush := h.palette.Get(BrushArea)

	bars := make([]Bar, 0, h.nbins)
	for i, n := range counts {
		height := int(float64(n) / float64(maxCount) * float64(h.Height()) * factor)
		bars = append(bars, Bar{
			Name:   strconv.Itoa(height),
			Height: height,
			Brush:  brush,
			Column: i * binWidth,
			Width:  binWidth,
		})
	}
	h.AddLegendEntry(brush, label)
	h.plotBars(bars)
	return h
}

// countDistinct returns the number of distinct values in data.
func countDistinct(data []float64) int {
	seen := make(map[float64]struct{}, len(data))
	for _, v := range data {
		seen[v] = struct{}{}
	}
	return len(seen)
}
