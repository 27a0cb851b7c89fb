package askiplot

import "github.com/askiplot/askiplot/console"

// Option configures a canvas during creation.
//
// Example:
//
//	// Terminal-sized canvas with the stock glyphs
//	c, err := askiplot.New(0, 0)
//
//	// Custom defaults (dependency injection instead of process-wide state)
//	c, err := askiplot.New(80, 24, askiplot.WithDefaults(askiplot.Defaults{Main: "*"}))
type Option func(*options)

// options holds optional configuration for canvas creation.
type options struct {
	defaults     Defaults
	sizeProvider func() (width, height int)
	palette      *Palette
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		defaults:     Defaults{}.merged(),
		sizeProvider: console.Size,
	}
}

// Defaults is the glyph set the nine well-known brushes start from. Zero
// fields fall back to the standard glyphs, so partial overrides read
// naturally:
//
//	askiplot.Defaults{Area: "%", BorderTop: "="}
//
// Each canvas carries its own copy; there is no shared mutable default
// state between canvases.
type Defaults struct {
	Main           string
	Blank          string
	Area           string
	LineHorizontal string
	LineVertical   string
	BorderTop      string
	BorderBottom   string
	BorderLeft     string
	BorderRight    string
}

// merged fills zero fields with the standard glyphs and normalizes the
// rest per the brush value rules, so a palette never holds an unusable
// glyph.
func (d Defaults) merged() Defaults {
	fill := func(v *string, std string) {
		n, err := normalizeBrushValue(*v)
		if err != nil {
			n = std
		}
		*v = n
	}
	fill(&d.Main, "_")
	fill(&d.Blank, " ")
	fill(&d.Area, "#")
	fill(&d.LineHorizontal, "-")
	fill(&d.LineVertical, "|")
	fill(&d.BorderTop, "_")
	fill(&d.BorderBottom, "_")
	fill(&d.BorderLeft, "|")
	fill(&d.BorderRight, "|")
	return d
}

// WithDefaults seeds the canvas palette from d instead of the standard
// glyph set. Ignored when WithPalette is also given.
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		o.defaults = d.merged()
	}
}

// WithSizeProvider sets the source of terminal dimensions used when the
// canvas is created with a zero width or height. The default is
// [console.Size]. The provided height loses one row, left free for the
// shell prompt.
//
// Example:
//
//	// Fixed fallback in tests and non-terminal environments
//	c, _ := askiplot.New(0, 0, askiplot.WithSizeProvider(func() (int, int) {
//	    return 100, 31
//	}))
func WithSizeProvider(f func() (width, height int)) Option {
	return func(o *options) {
		if f != nil {
			o.sizeProvider = f
		}
	}
}

// WithPalette seeds the canvas with a copy of p, keeping registered styles
// beyond the nine well-known names.
func WithPalette(p *Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}
