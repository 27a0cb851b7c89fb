package askiplot

import (
	"errors"
	"testing"
)

func TestNewBrushNormalization(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"printable single byte", "#", "#"},
		{"printable keeps first byte", "#rest ignored", "#"},
		{"space", " ", " "},
		{"lone tab becomes space", "\t", " "},
		{"lone newline becomes space", "\n", " "},
		{"lone carriage return becomes space", "\r", " "},
		{"two byte encoding kept", "\xc3\xa9", "\xc3\xa9"},
		{"three byte encoding truncated", "\xe2\x96\x88", "\xe2\x96"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBrush("Main", tt.value)
			if err != nil {
				t.Fatalf("NewBrush(%q) error: %v", tt.value, err)
			}
			if got := b.Value(); got != tt.want {
				t.Errorf("NewBrush(%q).Value() = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewBrushInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"lone control byte", "\x01"},
		{"lone DEL", "\x7f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBrush("Main", tt.value)
			if !errors.Is(err, ErrInvalidBrushValue) {
				t.Errorf("NewBrush(%q) error = %v, want ErrInvalidBrushValue", tt.value, err)
			}
		})
	}
}

func TestNewGlyphAnonymous(t *testing.T) {
	g, err := NewGlyph("*")
	if err != nil {
		t.Fatalf("NewGlyph error: %v", err)
	}
	if !g.Anonymous() {
		t.Error("NewGlyph brush is not anonymous")
	}
	if got := g.Name(); got != "" {
		t.Errorf("Name() = %q, want empty", got)
	}
}

func TestMustGlyphPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlyph(\"\") did not panic")
		}
	}()
	MustGlyph("")
}

func TestBrushWithName(t *testing.T) {
	b := MustBrush(BrushMain, "+")
	got := b.WithName(BrushArea)
	if got.Name() != BrushArea || got.Value() != "+" {
		t.Errorf("WithName(%q) = {%q %q}, want {%q %q}", BrushArea, got.Name(), got.Value(), BrushArea, "+")
	}
	if b.Name() != BrushMain {
		t.Errorf("WithName mutated the receiver: Name() = %q", b.Name())
	}
}

func TestBrushCell(t *testing.T) {
	b := MustBrush(BrushArea, "#")
	got := b.Cell()
	want := Cell{Style: BrushArea, Glyph: "#"}
	if got != want {
		t.Errorf("Cell() = %+v, want %+v", got, want)
	}
}

func TestGlyphBrushesSkipsInvalid(t *testing.T) {
	got := GlyphBrushes("a\x01b")
	if len(got) != 2 {
		t.Fatalf("GlyphBrushes returned %d brushes, want 2", len(got))
	}
	if got[0].Value() != "a" || got[1].Value() != "b" {
		t.Errorf("GlyphBrushes values = %q, %q, want a, b", got[0].Value(), got[1].Value())
	}
}

func TestBrushSets(t *testing.T) {
	tests := []struct {
		name string
		got  []Brush
		want int
	}{
		{"letters", LetterBrushes(), 26},
		{"numbers", NumberBrushes(), 10},
		{"symbols", SymbolBrushes(), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.got), tt.want)
			}
			for _, b := range tt.got {
				if !b.Anonymous() {
					t.Errorf("brush %q is not anonymous", b.Value())
				}
			}
		})
	}
}
