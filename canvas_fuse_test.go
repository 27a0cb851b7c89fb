package askiplot

import (
	"strings"
	"testing"
)

func TestFuseOpaque(t *testing.T) {
	dst, _ := New(6, 4)
	dst.FillMain()

	src, _ := New(2, 2)
	src.Fill(MustBrush(BrushArea, "#")).Set(1, 1, MustBrush(BrushBlank, " "))

	dst.Fuse(src, Abs(2, 1))

	if got := dst.At(2, 1).Glyph; got != "#" {
		t.Errorf("At(2, 1).Glyph = %q, want #", got)
	}
	// Opaque fusion copies blanks too.
	if got := dst.At(3, 2); !got.Blank() {
		t.Errorf("At(3, 2) = %+v, want blank copied from source", got)
	}
	if got := dst.At(0, 0).Style; got != BrushMain {
		t.Errorf("cell outside the overlap = %q, want Main", got)
	}
}

func TestFuseTransparentSkipsBlanks(t *testing.T) {
	dst, _ := New(6, 4)
	dst.FillMain()

	src, _ := New(2, 2)
	src.Set(0, 0, MustBrush(BrushArea, "#"))

	dst.FuseTransparent(src, Abs(2, 1))

	if got := dst.At(2, 1).Glyph; got != "#" {
		t.Errorf("At(2, 1).Glyph = %q, want #", got)
	}
	if got := dst.At(3, 2).Style; got != BrushMain {
		t.Errorf("blank source cell overwrote destination: %+v", dst.At(3, 2))
	}
}

func TestFuseTransparentKeepsAnonymousSpaces(t *testing.T) {
	dst, _ := New(4, 2)
	dst.FillMain()

	src, _ := New(3, 1)
	src.DrawText("a c", SouthWest)

	dst.FuseTransparent(src, Abs(0, 0))

	if got := dst.At(0, 0).Glyph; got != "a" {
		t.Errorf("At(0, 0).Glyph = %q, want a", got)
	}
	// The anonymous space inside the text is foreground, not blank.
	if got := dst.At(1, 0); got.Glyph != " " || got.Style != "" {
		t.Errorf("At(1, 0) = %+v, want anonymous space", got)
	}
	if got := dst.At(2, 0).Glyph; got != "c" {
		t.Errorf("At(2, 0).Glyph = %q, want c", got)
	}
}

func TestFuseAdjustPullsOnCanvas(t *testing.T) {
	dst, _ := New(6, 4)
	src, _ := New(3, 2)
	src.Fill(MustBrush(BrushArea, "#"))

	dst.Fuse(src, NorthEast)

	for i := 3; i < 6; i++ {
		for j := 2; j < 4; j++ {
			if got := dst.At(i, j).Glyph; got != "#" {
				t.Errorf("At(%d, %d).Glyph = %q, want #", i, j, got)
			}
		}
	}
	if got := countStyled(dst); got != 6 {
		t.Errorf("painted %d cells, want 6", got)
	}
}

func TestFuseDontAdjustClips(t *testing.T) {
	dst, _ := New(6, 4)
	src, _ := New(3, 2)
	src.Fill(MustBrush(BrushArea, "#"))

	dst.FuseDontAdjust(src, Abs(4, 3))

	// Only the on-canvas corner of the source lands.
	want := [][2]int{{4, 3}, {5, 3}}
	for _, pt := range want {
		if got := dst.At(pt[0], pt[1]).Glyph; got != "#" {
			t.Errorf("At(%d, %d).Glyph = %q, want #", pt[0], pt[1], got)
		}
	}
	if got := countStyled(dst); got != len(want) {
		t.Errorf("painted %d cells, want %d", got, len(want))
	}
}

func TestFuseDontAdjustNegativeOffset(t *testing.T) {
	dst, _ := New(6, 4)
	src, _ := New(3, 2)
	src.Fill(MustBrush(BrushArea, "#"))

	dst.FuseDontAdjust(src, Abs(-2, -1))

	if got := dst.At(0, 0).Glyph; got != "#" {
		t.Errorf("At(0, 0).Glyph = %q, want #", got)
	}
	if got := countStyled(dst); got != 1 {
		t.Errorf("painted %d cells, want 1", got)
	}
}

func TestFuseOrderLaterWins(t *testing.T) {
	dst, _ := New(4, 2)
	a, _ := New(2, 1)
	a.Fill(MustBrush(BrushArea, "A"))
	b, _ := New(2, 1)
	b.Fill(MustBrush(BrushArea, "B"))

	dst.Fuse(a, Abs(0, 0)).Fuse(b, Abs(1, 0))

	row := strings.Split(dst.Serialize(), "\n")[1]
	if row != "ABB " {
		t.Errorf("bottom row = %q, want %q", row, "ABB ")
	}
}

func TestFusionAppliesInAddOrder(t *testing.T) {
	dst, _ := New(4, 2)
	a, _ := New(2, 1)
	a.Fill(MustBrush(BrushArea, "A"))
	b, _ := New(2, 1)
	b.Fill(MustBrush(BrushArea, "B"))

	got := dst.Fusion().
		Add(a, Abs(0, 0)).
		Add(b, Abs(1, 0)).
		Fuse()

	if got != dst {
		t.Fatal("Fusion.Fuse did not return the destination")
	}
	row := strings.Split(dst.Serialize(), "\n")[1]
	if row != "ABB " {
		t.Errorf("bottom row = %q, want %q", row, "ABB ")
	}
}

func TestFusionTransparent(t *testing.T) {
	dst, _ := New(3, 1)
	dst.FillMain()
	src, _ := New(3, 1)
	src.Set(1, 0, MustBrush(BrushArea, "#"))

	dst.Fusion().Add(src, SouthWest).FuseTransparent()

	row := strings.TrimSuffix(dst.Serialize(), "\n")
	if row != "_#_" {
		t.Errorf("row = %q, want _#_", row)
	}
}

func TestExtract(t *testing.T) {
	c, _ := New(6, 4)
	c.DrawText("abcdef", Abs(0, 1))

	got := c.Extract(Abs(1, 1), Abs(3, 2))
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("Extract size = %dx%d, want 3x2", got.Width(), got.Height())
	}
	if got.Serialize() != "   \nbcd\n" {
		t.Errorf("Extract serialized = %q, want %q", got.Serialize(), "   \nbcd\n")
	}
}

func TestExtractReversedCornersClip(t *testing.T) {
	c, _ := New(4, 3)
	c.FillMain()
	got := c.Extract(Abs(9, 9), Abs(2, 1))
	if got.Width() != 2 || got.Height() != 2 {
		t.Errorf("Extract size = %dx%d, want 2x2", got.Width(), got.Height())
	}
}

func TestExtractIsACopy(t *testing.T) {
	c, _ := New(4, 3)
	ext := c.Extract(SouthWest, NorthEast)
	ext.FillMain()
	if got := countStyled(c); got != 0 {
		t.Errorf("mutating the extracted copy painted %d cells on the original", got)
	}
}

func TestShift(t *testing.T) {
	c, _ := New(4, 3)
	c.DrawText("ab", Abs(0, 0))

	c.Shift(Offset{Col: 2, Row: 1})

	if got := c.At(2, 1).Glyph; got != "a" {
		t.Errorf("At(2, 1).Glyph = %q, want a", got)
	}
	if got := c.At(3, 1).Glyph; got != "b" {
		t.Errorf("At(3, 1).Glyph = %q, want b", got)
	}
	if !c.At(0, 0).Blank() {
		t.Error("vacated cell is not blank")
	}
}

func TestShiftDiscardsPushedOutCells(t *testing.T) {
	c, _ := New(3, 2)
	c.DrawText("abc", Abs(0, 0))
	c.Shift(Offset{Col: -1})

	row := strings.Split(c.Serialize(), "\n")[1]
	if row != "bc " {
		t.Errorf("bottom row = %q, want %q", row, "bc ")
	}

	c.Shift(Offset{Col: 5})
	if got := countStyled(c); got != 0 {
		t.Errorf("painted %d cells after shifting everything out, want 0", got)
	}
}
