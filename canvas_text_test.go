package askiplot

import (
	"strings"
	"testing"
)

func TestDrawText(t *testing.T) {
	c, _ := New(10, 3)
	c.DrawText("hi", Abs(1, 1))

	if got := c.At(1, 1); got.Glyph != "h" || got.Style != "" {
		t.Errorf("At(1, 1) = %+v, want anonymous h", got)
	}
	if got := c.At(2, 1).Glyph; got != "i" {
		t.Errorf("At(2, 1).Glyph = %q, want i", got)
	}
	if !c.At(3, 1).Blank() {
		t.Error("cell past the text is not blank")
	}
}

func TestDrawTextAdjustPullsOnCanvas(t *testing.T) {
	c, _ := New(10, 3)
	c.DrawText("hello", NorthEast)

	got := strings.Split(c.Serialize(), "\n")[0]
	if got != "     hello" {
		t.Errorf("top row = %q, want %q", got, "     hello")
	}
}

func TestDrawTextTruncatedAtEdge(t *testing.T) {
	c, _ := New(4, 2)
	c.DrawText("abcdef", SouthWest)

	rows := strings.Split(c.Serialize(), "\n")
	if rows[1] != "abcd" {
		t.Errorf("bottom row = %q, want abcd", rows[1])
	}
	if rows[0] != "    " {
		t.Errorf("text wrapped onto the row above: %q", rows[0])
	}
}

func TestDrawTextDontAdjustClips(t *testing.T) {
	c, _ := New(6, 2)
	c.DrawTextDontAdjust("abc", Abs(4, 0))
	if got := c.At(4, 0).Glyph; got != "a" {
		t.Errorf("At(4, 0).Glyph = %q, want a", got)
	}
	if got := c.At(5, 0).Glyph; got != "b" {
		t.Errorf("At(5, 0).Glyph = %q, want b", got)
	}

	c.DrawTextDontAdjust("xyz", Abs(-1, 1))
	if got := c.At(0, 1).Glyph; got != "y" {
		t.Errorf("At(0, 1).Glyph = %q, want y", got)
	}
	if got := c.At(1, 1).Glyph; got != "z" {
		t.Errorf("At(1, 1).Glyph = %q, want z", got)
	}
}

func TestDrawTextDontAdjustRowOffCanvas(t *testing.T) {
	c, _ := New(6, 2)
	c.DrawTextDontAdjust("abc", Abs(0, 9))
	c.DrawTextDontAdjust("abc", Abs(0, -1))
	if got := c.Serialize(); strings.ContainsAny(got, "abc") {
		t.Errorf("off-canvas text leaked in:\n%s", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	c, _ := New(11, 3)
	c.DrawTextCentered("abc", Center)
	if got := c.At(5, 1).Glyph; got != "b" {
		t.Errorf("At(5, 1).Glyph = %q, want b", got)
	}
	if got := c.At(4, 1).Glyph; got != "a" {
		t.Errorf("At(4, 1).Glyph = %q, want a", got)
	}
}

func TestDrawTextNormalizesBytes(t *testing.T) {
	c, _ := New(6, 1)
	c.DrawText("a\x01b\tc", Abs(0, 0))

	if got := c.At(0, 0).Glyph; got != "a" {
		t.Errorf("At(0, 0).Glyph = %q, want a", got)
	}
	// Non-printable bytes are skipped but keep their column.
	if got := c.At(1, 0); got.Glyph != " " || got.Style != BrushBlank {
		t.Errorf("At(1, 0) = %+v, want untouched blank", got)
	}
	if got := c.At(2, 0).Glyph; got != "b" {
		t.Errorf("At(2, 0).Glyph = %q, want b", got)
	}
	// Tab renders as an anonymous space.
	if got := c.At(3, 0); got.Glyph != " " || got.Style != "" {
		t.Errorf("At(3, 0) = %+v, want anonymous space", got)
	}
	if got := c.At(4, 0).Glyph; got != "c" {
		t.Errorf("At(4, 0).Glyph = %q, want c", got)
	}
}

func TestDrawTextVertical(t *testing.T) {
	c, _ := New(5, 5)
	c.DrawTextVertical("abc", Abs(1, 3))

	for i, want := range []string{"a", "b", "c"} {
		if got := c.At(1, 3-i).Glyph; got != want {
			t.Errorf("At(1, %d).Glyph = %q, want %q", 3-i, got, want)
		}
	}
	if !c.At(1, 0).Blank() {
		t.Error("cell below the text is not blank")
	}
}

func TestDrawTextVerticalAdjust(t *testing.T) {
	c, _ := New(5, 3)
	c.DrawTextVertical("abcd", SouthWest)

	for i, want := range []string{"a", "b", "c"} {
		if got := c.At(0, 2-i).Glyph; got != want {
			t.Errorf("At(0, %d).Glyph = %q, want %q", 2-i, got, want)
		}
	}
	if got := c.Serialize(); strings.Contains(got, "d") {
		t.Error("glyph past the bottom edge was drawn")
	}
}

func TestDrawTextVerticalCentered(t *testing.T) {
	c, _ := New(5, 5)
	c.DrawTextVerticalCentered("abc", Center)
	if got := c.At(2, 2).Glyph; got != "b" {
		t.Errorf("At(2, 2).Glyph = %q, want b", got)
	}
	if got := c.At(2, 3).Glyph; got != "a" {
		t.Errorf("At(2, 3).Glyph = %q, want a", got)
	}
}

func TestDrawTitle(t *testing.T) {
	c, _ := New(9, 3)
	c.SetTitle("top").DrawTitle()

	got := strings.Split(c.Serialize(), "\n")[0]
	if got != "   top   " {
		t.Errorf("top row = %q, want %q", got, "   top   ")
	}
}

func TestDrawLegend(t *testing.T) {
	c, _ := New(12, 8)
	c.AddLegendEntry(MustGlyph("@"), "a").
		AddLegendEntry(MustGlyph("$"), "bb").
		DrawLegend()

	// Longest label 2 => box is 8x4, anchored in the top right corner.
	if got := c.At(5, 5).Glyph; got != "@" {
		t.Errorf("first entry glyph cell = %q, want @", got)
	}
	if got := c.At(7, 5).Glyph; got != "a" {
		t.Errorf("first entry label cell = %q, want a", got)
	}
	if got := c.At(5, 4).Glyph; got != "$" {
		t.Errorf("second entry glyph cell = %q, want $", got)
	}

	for i := 3; i <= 10; i++ {
		if got := c.At(i, 6).Style; got != BrushBorderTop {
			t.Errorf("At(%d, 6).Style = %q, want BorderTop", i, got)
		}
	}
	if got := c.At(3, 4).Style; got != BrushBorderLeft {
		t.Errorf("left box side = %q, want BorderLeft", got)
	}
	if got := c.At(10, 4).Style; got != BrushBorderRight {
		t.Errorf("right box side = %q, want BorderRight", got)
	}
}

func TestDrawLegendEmpty(t *testing.T) {
	c, _ := New(10, 4)
	before := c.Serialize()
	c.DrawLegend()
	if got := c.Serialize(); got != before {
		t.Error("DrawLegend with no entries modified the canvas")
	}
}

func TestDrawLegendAtSouthWest(t *testing.T) {
	c, _ := New(12, 8)
	c.AddLegendEntry(MustGlyph("@"), "a").DrawLegendAt(SouthWest)

	// Box corner sits at the origin, 7x3.
	if got := c.At(0, 0).Style; got != BrushBorderLeft {
		t.Errorf("At(0, 0).Style = %q, want BorderLeft", got)
	}
	if got := c.At(2, 1).Glyph; got != "@" {
		t.Errorf("entry glyph cell = %q, want @", got)
	}
	if got := c.At(4, 1).Glyph; got != "a" {
		t.Errorf("entry label cell = %q, want a", got)
	}
}
