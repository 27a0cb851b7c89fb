package askiplot

import "fmt"

// Palette is a canvas's style registry: a pure name-to-glyph store.
// Lookups never fail; an unknown name degrades to the Blank brush, so
// callers may draw with names they never registered.
//
// Each palette carries its own default glyph set (see [Defaults]); Reset
// restores the nine well-known names from it. Palettes are not safe for
// concurrent mutation, matching the single-threaded canvas model.
type Palette struct {
	brushes  map[string]string
	defaults Defaults
}

// NewPalette creates a palette seeded with the standard default glyphs.
func NewPalette() *Palette {
	return NewPaletteWith(Defaults{})
}

// NewPaletteWith creates a palette seeded from d. Zero fields of d fall
// back to the standard glyphs.
func NewPaletteWith(d Defaults) *Palette {
	p := &Palette{defaults: d.merged()}
	p.Reset()
	return p
}

// Set registers or overwrites a style. The value is normalized per
// [NewBrush]; an empty name is rejected because anonymous brushes live
// outside the registry.
func (p *Palette) Set(name, value string) error {
	if name == "" {
		return fmt.Errorf("unnamed style: %w", ErrInvalidBrushValue)
	}
	v, err := normalizeBrushValue(value)
	if err != nil {
		return err
	}
	p.brushes[name] = v
	return nil
}

// SetBrush registers a named brush. Anonymous brushes are rejected.
func (p *Palette) SetBrush(b Brush) error {
	return p.Set(b.Name(), b.Value())
}

// SetMany registers the same glyph under every given name.
func (p *Palette) SetMany(value string, names ...string) error {
	for _, name := range names {
		if err := p.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the brush registered under name, or the Blank brush when the
// name is unknown.
func (p *Palette) Get(name string) Brush {
	if v, ok := p.brushes[name]; ok {
		return Brush{name: name, value: v}
	}
	return Brush{name: BrushBlank, value: p.defaults.Blank}
}

// Has reports whether name is registered.
func (p *Palette) Has(name string) bool {
	_, ok := p.brushes[name]
	return ok
}

// Reset drops every registered style and reinstates the nine well-known
// names from the palette's defaults.
func (p *Palette) Reset() *Palette {
	d := p.defaults
	p.brushes = map[string]string{
		BrushMain:           d.Main,
		BrushBlank:          d.Blank,
		BrushArea:           d.Area,
		BrushLineHorizontal: d.LineHorizontal,
		BrushLineVertical:   d.LineVertical,
		BrushBorderTop:      d.BorderTop,
		BrushBorderBottom:   d.BorderBottom,
		BrushBorderLeft:     d.BorderLeft,
		BrushBorderRight:    d.BorderRight,
	}
	return p
}

// Clone returns an independent copy of the palette.
func (p *Palette) Clone() *Palette {
	c := &Palette{
		brushes:  make(map[string]string, len(p.brushes)),
		defaults: p.defaults,
	}
	for k, v := range p.brushes {
		c.brushes[k] = v
	}
	return c
}

func (p *Palette) blankCell() Cell {
	return Cell{Style: BrushBlank, Glyph: p.Get(BrushBlank).Value()}
}
