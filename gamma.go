package askiplot

import "math/rand/v2"

// DefaultGammaGlyphs is the density ramp used by [FixedGamma] when no
// glyphs are given, ordered from darkest to brightest sample.
const DefaultGammaGlyphs = "  ..oo00#@"

// defaultZeroThreshold is the luminance bound below which the threshold
// gammas paint their zero brush.
const defaultZeroThreshold = 128

// Gamma converts a luminance sample to the brush that paints it.
// Implementations may keep state between calls: [Canvas.DrawImage] maps
// pixels in raster order (top scanline first, left to right), which is
// the order [TextGamma] consumes its text in.
type Gamma interface {
	Map(level uint8) Brush
}

// glyphBrush wraps a single sanitized byte as an anonymous brush.
func glyphBrush(b byte) Brush {
	return Brush{value: string(b)}
}

// sanitizeGlyphs keeps the printable ASCII bytes of s.
func sanitizeGlyphs(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isPrintASCII(s[i]) {
			out = append(out, s[i])
		}
	}
	return out
}

// FixedGamma maps each of the 256 luminance levels to a fixed glyph from
// a small ramp. The ramp is stretched over the whole range with
// proportional bucket widths, so a 10-glyph ramp covers roughly 26 levels
// per glyph.
//
// Example:
//
//	g := askiplot.NewFixedGamma(" .:-=+*#%@")
//	c.DrawImage(img, g, askiplot.SouthWest)
type FixedGamma struct {
	glyphs  []byte
	recoded [256]byte
}

// NewFixedGamma creates a fixed gamma over the given glyph ramp. Bytes
// outside printable ASCII are dropped; an empty ramp falls back to
// [DefaultGammaGlyphs].
func NewFixedGamma(glyphs string) *FixedGamma {
	g := &FixedGamma{}
	return g.Set(glyphs)
}

// Map returns the ramp glyph covering level as an anonymous brush.
func (g *FixedGamma) Map(level uint8) Brush {
	return glyphBrush(g.recoded[level])
}

// Set replaces the glyph ramp and recomputes the level table. Bytes
// outside printable ASCII are dropped; an empty ramp falls back to
// [DefaultGammaGlyphs]. Ramps longer than 256 glyphs are truncated.
func (g *FixedGamma) Set(glyphs string) *FixedGamma {
	bs := sanitizeGlyphs(glyphs)
	if len(bs) == 0 {
		bs = []byte(DefaultGammaGlyphs)
	}

	levels := len(bs)
	g.glyphs = bs
	if levels > 256 {
		g.glyphs = bs[:256]
	}

	// Spread 256 levels over the ramp; the first 256%levels glyphs
	// absorb one extra level each.
	div, rem := 256/levels, 256%levels
	k := 0
	for i := 0; i < levels && k < 256; i++ {
		n := div
		if i < rem {
			n++
		}
		for c := 0; c < n; c++ {
			g.recoded[k] = bs[i]
			k++
		}
	}
	return g
}

// Shuffle randomly permutes the ramp, detaching glyph density from
// luminance order.
func (g *FixedGamma) Shuffle() *FixedGamma {
	rand.Shuffle(len(g.glyphs), func(i, j int) {
		g.glyphs[i], g.glyphs[j] = g.glyphs[j], g.glyphs[i]
	})
	return g.Set(string(g.glyphs))
}

// Glyphs returns the current ramp.
func (g *FixedGamma) Glyphs() string { return string(g.glyphs) }

// RandomGamma paints dark samples with a fixed zero brush and bright
// samples with a uniformly random glyph from its set. Re-drawing the same
// image yields a different picture each time, which animates into a
// "static" effect.
//
// Example:
//
//	g := askiplot.NewRandomGamma("01")
//	for {
//	    c.DrawImage(img, g, askiplot.SouthWest)
//	    fmt.Print(c.Serialize())
//	    time.Sleep(125 * time.Millisecond)
//	}
type RandomGamma struct {
	glyphs    []byte
	threshold uint8
	zero      Brush
}

// NewRandomGamma creates a random gamma over the given glyph set with a
// blank zero brush and threshold 128. Bytes outside printable ASCII are
// dropped; an empty set falls back to [DefaultGammaGlyphs].
func NewRandomGamma(glyphs string) *RandomGamma {
	g := &RandomGamma{
		threshold: defaultZeroThreshold,
		zero:      MustGlyph(" "),
	}
	return g.Set(glyphs)
}

// Map returns the zero brush below the threshold and a random glyph from
// the set at or above it.
func (g *RandomGamma) Map(level uint8) Brush {
	if level < g.threshold {
		return g.zero
	}
	return glyphBrush(g.glyphs[rand.IntN(len(g.glyphs))])
}

// Set replaces the glyph set. Bytes outside printable ASCII are dropped;
// an empty set falls back to [DefaultGammaGlyphs]. Sets longer than 256
// glyphs are truncated.
func (g *RandomGamma) Set(glyphs string) *RandomGamma {
	bs := sanitizeGlyphs(glyphs)
	if len(bs) == 0 {
		bs = []byte(DefaultGammaGlyphs)
	}
	if len(bs) > 256 {
		bs = bs[:256]
	}
	g.glyphs = bs
	return g
}

// SetZeroThreshold sets the luminance bound below which Map returns the
// zero brush.
func (g *RandomGamma) SetZeroThreshold(t uint8) *RandomGamma {
	g.threshold = t
	return g
}

// SetZeroBrush sets the brush painted below the threshold. The brush is
// stored anonymously, so palette restyling never touches it.
func (g *RandomGamma) SetZeroBrush(b Brush) *RandomGamma {
	g.zero = Brush{value: b.value}
	return g
}

// ZeroThreshold returns the current threshold.
func (g *RandomGamma) ZeroThreshold() uint8 { return g.threshold }

// ZeroBrush returns the brush painted below the threshold.
func (g *RandomGamma) ZeroBrush() Brush { return g.zero }

// Glyphs returns the current glyph set.
func (g *RandomGamma) Glyphs() string { return string(g.glyphs) }

// TextGamma paints dark samples with a fixed zero brush and spells a
// repeating text across bright samples, one character per bright pixel in
// raster order. Dark pixels do not consume characters.
//
// Example:
//
//	c.DrawImage(logo, askiplot.NewTextGamma("askiplot"), askiplot.SouthWest)
type TextGamma struct {
	text      []byte
	useCount  int
	threshold uint8
	zero      Brush
}

// NewTextGamma creates a text gamma with a blank zero brush and threshold
// 128. An empty text falls back to "AskiPlot".
func NewTextGamma(text string) *TextGamma {
	g := &TextGamma{
		threshold: defaultZeroThreshold,
		zero:      MustGlyph(" "),
	}
	if text == "" {
		text = "AskiPlot"
	}
	return g.SetText(text)
}

// Map returns the zero brush below the threshold and the next text
// character at or above it.
func (g *TextGamma) Map(level uint8) Brush {
	if level < g.threshold {
		return g.zero
	}
	b := g.text[g.useCount%len(g.text)]
	g.useCount++
	return glyphBrush(b)
}

// SetText replaces the text and rewinds consumption to its first
// character. Bytes outside printable ASCII are dropped; an empty text
// becomes a single blank.
func (g *TextGamma) SetText(text string) *TextGamma {
	bs := sanitizeGlyphs(text)
	if len(bs) == 0 {
		bs = []byte(" ")
	}
	g.text = bs
	g.useCount = 0
	return g
}

// Reset rewinds consumption to the first character of the text.
func (g *TextGamma) Reset() *TextGamma {
	g.useCount = 0
	return g
}

// Text returns the current text.
func (g *TextGamma) Text() string { return string(g.text) }

// SetZeroThreshold sets the luminance bound below which Map returns the
// zero brush.
func (g *TextGamma) SetZeroThreshold(t uint8) *TextGamma {
	g.threshold = t
	return g
}

// SetZeroBrush sets the brush painted below the threshold. The brush is
// stored anonymously, so palette restyling never touches it.
func (g *TextGamma) SetZeroBrush(b Brush) *TextGamma {
	g.zero = Brush{value: b.value}
	return g
}

// ZeroThreshold returns the current threshold.
func (g *TextGamma) ZeroThreshold() uint8 { return g.threshold }

// ZeroBrush returns the brush painted below the threshold.
func (g *TextGamma) ZeroBrush() Brush { return g.zero }
