package askiplot

import "fmt"

// Well-known brush names. Every canvas palette starts with these nine
// registered; Reset restores them to their default glyphs.
const (
	BrushMain           = "Main"
	BrushBlank          = "Blank"
	BrushArea           = "Area"
	BrushLineHorizontal = "LineHorizontal"
	BrushLineVertical   = "LineVertical"
	BrushBorderTop      = "BorderTop"
	BrushBorderBottom   = "BorderBottom"
	BrushBorderLeft     = "BorderLeft"
	BrushBorderRight    = "BorderRight"
)

// Brush pairs a style name with the glyph it paints. Drawing operations
// stamp a brush onto canvas cells; the cell remembers the brush name so the
// glyph can be restyled later (see [Canvas.Redraw]) and so fusion can tell
// blank cells apart from drawn ones.
//
// A brush with an empty name is anonymous: it paints a raw glyph that
// belongs to no registered style. Text rendering and image gammas emit
// anonymous brushes so their cells never collide with palette names and are
// never mistaken for Blank during transparent fusion.
//
// Example:
//
//	b, err := askiplot.NewBrush("Area", "#")
//	g := askiplot.MustGlyph("*")
type Brush struct {
	name  string
	value string
}

// NewBrush creates a named brush. The value is normalized: a printable
// ASCII first byte keeps one byte; a lone tab, newline or carriage return
// becomes a space; a multi-byte value with a non-printable first byte keeps
// its first two bytes verbatim (enough for two-byte encodings). Anything
// else fails with ErrInvalidBrushValue.
func NewBrush(name, value string) (Brush, error) {
	v, err := normalizeBrushValue(value)
	if err != nil {
		return Brush{}, err
	}
	return Brush{name: name, value: v}, nil
}

// NewGlyph creates an anonymous brush from a glyph value, applying the same
// normalization as NewBrush.
func NewGlyph(value string) (Brush, error) {
	return NewBrush("", value)
}

// MustBrush is like NewBrush but panics on an invalid value.
// Intended for package-level brush sets and literals known to be valid.
func MustBrush(name, value string) Brush {
	b, err := NewBrush(name, value)
	if err != nil {
		panic(err)
	}
	return b
}

// MustGlyph is like NewGlyph but panics on an invalid value.
func MustGlyph(value string) Brush {
	b, err := NewGlyph(value)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the style name, or "" for an anonymous brush.
func (b Brush) Name() string { return b.name }

// Value returns the normalized 1-2 byte glyph.
func (b Brush) Value() string { return b.value }

// Anonymous reports whether the brush has no style name.
func (b Brush) Anonymous() bool { return b.name == "" }

// Cell returns the canvas cell this brush paints.
func (b Brush) Cell() Cell { return Cell{Style: b.name, Glyph: b.value} }

// WithName returns a copy of the brush carrying a different style name.
func (b Brush) WithName(name string) Brush {
	return Brush{name: name, value: b.value}
}

func normalizeBrushValue(value string) (string, error) {
	switch {
	case len(value) == 0:
		return "", fmt.Errorf("empty glyph: %w", ErrInvalidBrushValue)
	case isPrintASCII(value[0]):
		return value[:1], nil
	case len(value) == 1:
		if value[0] == '\t' || value[0] == '\n' || value[0] == '\r' {
			return " ", nil
		}
		return "", fmt.Errorf("non-printable glyph %q: %w", value, ErrInvalidBrushValue)
	default:
		return value[:2], nil
	}
}

func isPrintASCII(b byte) bool { return b >= 0x20 && b <= 0x7e }

// GlyphBrushes converts each byte of s into one anonymous single-glyph
// brush. Bytes that fail normalization are skipped.
func GlyphBrushes(s string) []Brush {
	out := make([]Brush, 0, len(s))
	for i := 0; i < len(s); i++ {
		b, err := NewGlyph(s[i : i+1])
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

// LetterBrushes returns one anonymous brush per lowercase letter.
func LetterBrushes() []Brush { return GlyphBrushes("abcdefghijklmnopqrstuvwxyz") }

// NumberBrushes returns one anonymous brush per decimal digit.
func NumberBrushes() []Brush { return GlyphBrushes("0123456789") }

// SymbolBrushes returns the default set of visually distinct glyphs used to
// tell bar series apart when the caller does not pick brushes explicitly.
func SymbolBrushes() []Brush { return GlyphBrushes(`@$*#.+&*=?,-%!^"<~>'`) }
