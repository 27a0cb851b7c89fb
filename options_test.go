package askiplot

import "testing"

// TestNewDefaultGlyphs tests that New seeds the standard glyph set by default.
func TestNewDefaultGlyphs(t *testing.T) {
	c, err := New(4, 2)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if got := c.Palette().Get(BrushMain).Value(); got != "_" {
		t.Errorf("Main glyph = %q, want _", got)
	}
	if got := c.Palette().Get(BrushArea).Value(); got != "#" {
		t.Errorf("Area glyph = %q, want #", got)
	}
}

// TestNewWithDefaults tests overriding some glyphs while keeping the rest.
func TestNewWithDefaults(t *testing.T) {
	c, err := New(4, 2, WithDefaults(Defaults{Main: "*"}))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if got := c.Palette().Get(BrushMain).Value(); got != "*" {
		t.Errorf("Main glyph = %q, want *", got)
	}
	// Unset fields keep the standard glyphs.
	if got := c.Palette().Get(BrushArea).Value(); got != "#" {
		t.Errorf("Area glyph = %q, want #", got)
	}

	c.FillMain()
	if got := c.At(0, 0).Glyph; got != "*" {
		t.Errorf("At(0, 0).Glyph = %q, want *", got)
	}
}

func TestDefaultsMerged(t *testing.T) {
	tests := []struct {
		name string
		in   Defaults
		get  func(Defaults) string
		want string
	}{
		{"zero falls back", Defaults{}, func(d Defaults) string { return d.Main }, "_"},
		{"multi-byte keeps first char", Defaults{Area: "xy"}, func(d Defaults) string { return d.Area }, "x"},
		{"whitespace becomes space", Defaults{Blank: "\t"}, func(d Defaults) string { return d.Blank }, " "},
		{"control falls back", Defaults{Main: "\x01"}, func(d Defaults) string { return d.Main }, "_"},
		{"border override", Defaults{BorderTop: "="}, func(d Defaults) string { return d.BorderTop }, "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(tt.in.merged()); got != tt.want {
				t.Errorf("merged glyph = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNewWithSizeProvider tests dependency injection of the terminal probe.
func TestNewWithSizeProvider(t *testing.T) {
	c, err := New(0, 0, WithSizeProvider(func() (int, int) {
		return 100, 31
	}))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if c.Width() != 100 {
		t.Errorf("Width() = %d, want 100", c.Width())
	}
	// One row stays free for the prompt.
	if c.Height() != 30 {
		t.Errorf("Height() = %d, want 30", c.Height())
	}
}

// TestWithSizeProviderNilIgnored tests that a nil provider keeps the
// previous one instead of clearing it.
func TestWithSizeProviderNilIgnored(t *testing.T) {
	c, err := New(0, 5,
		WithSizeProvider(func() (int, int) { return 42, 10 }),
		WithSizeProvider(nil),
	)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if c.Width() != 42 || c.Height() != 5 {
		t.Errorf("canvas is %dx%d, want 42x5", c.Width(), c.Height())
	}
}

// TestNewWithPalette tests dependency injection of a pre-built palette.
func TestNewWithPalette(t *testing.T) {
	p := NewPalette()
	if err := p.Set("Candy", "%"); err != nil {
		t.Fatalf("Set() = %v", err)
	}

	c, err := New(4, 2, WithPalette(p))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if !c.Palette().Has("Candy") {
		t.Error("canvas palette is missing the registered Candy style")
	}

	// The canvas holds a copy, not the caller's palette.
	p.Set("Candy", "&")
	if got := c.Palette().Get("Candy").Value(); got != "%" {
		t.Errorf("Candy glyph = %q, want %q after mutating the source palette", got, "%")
	}
}

// TestWithPaletteOverridesDefaults tests that an injected palette takes
// precedence over WithDefaults.
func TestWithPaletteOverridesDefaults(t *testing.T) {
	c, err := New(4, 2,
		WithDefaults(Defaults{Area: "%"}),
		WithPalette(NewPalette()),
	)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if got := c.Palette().Get(BrushArea).Value(); got != "#" {
		t.Errorf("Area glyph = %q, want the palette's #", got)
	}
}
