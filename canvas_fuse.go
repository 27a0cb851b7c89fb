package askiplot

// Fuse overlays src onto the canvas at pos, first pulling the position
// on-canvas so src stays fully visible where it can. Every overlapping
// source cell overwrites the destination, blanks included; cells outside
// the overlap are untouched on both sides. Sequential fuses apply in call
// order, later calls winning on overlap.
func (c *Canvas) Fuse(src Plot, pos Position) *Canvas {
	return c.fuse(src, pos, true, true)
}

// FuseDontAdjust is Fuse without boundary adjustment: the resolved position
// is used as-is and off-canvas source cells are clipped.
func (c *Canvas) FuseDontAdjust(src Plot, pos Position) *Canvas {
	return c.fuse(src, pos, true, false)
}

// FuseTransparent is Fuse with blank transparency: source cells styled
// Blank are skipped, letting the destination show through. Anonymous cells
// always copy, so text and gamma output stay foreground.
func (c *Canvas) FuseTransparent(src Plot, pos Position) *Canvas {
	return c.fuse(src, pos, false, true)
}

// FuseTransparentDontAdjust combines blank transparency with an unadjusted
// position.
func (c *Canvas) FuseTransparentDontAdjust(src Plot, pos Position) *Canvas {
	return c.fuse(src, pos, false, false)
}

func (c *Canvas) fuse(src Plot, pos Position, keepBlanks, adjust bool) *Canvas {
	srcW, srcH := src.Width(), src.Height()
	offC, offR := c.resolve(pos)
	if adjust {
		offC, offR = adjustForBox(offC, offR, srcW, srcH, true, c.width, c.height)
	}

	colBeg := max(0, -offC)
	colEnd := min(srcW, c.width-offC)
	rowBeg := max(0, -offR)
	rowEnd := min(srcH, c.height-offR)

	for i := colBeg; i < colEnd; i++ {
		for j := rowBeg; j < rowEnd; j++ {
			cell := src.At(i, j)
			if !keepBlanks && cell.Blank() {
				continue
			}
			c.cells[(i+offC)*c.height+(j+offR)] = cell
		}
	}
	return c
}

// Fusion collects overlays to apply to a destination canvas in one go:
//
//	p.Fusion().
//		Add(box, NorthWest).
//		Add(box, SouthEast).
//		Fuse().
//		DrawLineHorizontalAtRatio(0.5)
//
// Fuse returns the destination, so a drawing chain continues naturally.
type Fusion struct {
	dst      *Canvas
	overlays []fusionOverlay
}

type fusionOverlay struct {
	src Plot
	pos Position
}

// Fusion starts collecting overlays for the canvas.
func (c *Canvas) Fusion() *Fusion {
	return &Fusion{dst: c}
}

// Add queues src for fusing at pos.
func (f *Fusion) Add(src Plot, pos Position) *Fusion {
	f.overlays = append(f.overlays, fusionOverlay{src: src, pos: pos})
	return f
}

// Fuse applies the queued overlays in add order, opaque and adjusted, and
// returns the destination canvas.
func (f *Fusion) Fuse() *Canvas {
	for _, o := range f.overlays {
		f.dst.Fuse(o.src, o.pos)
	}
	return f.dst
}

// FuseTransparent applies the queued overlays with blank transparency and
// returns the destination canvas.
func (f *Fusion) FuseTransparent() *Canvas {
	for _, o := range f.overlays {
		f.dst.FuseTransparent(o.src, o.pos)
	}
	return f.dst
}

// Extract returns a new canvas holding a copy of the inclusive rectangle
// between two corners, clipped to the canvas. The copy inherits the
// palette; limits, title and legend start fresh.
func (c *Canvas) Extract(corner1, corner2 Position) *Canvas {
	colLo, rowLo, colHi, rowHi := c.clipRect(corner1, corner2)
	w := max(0, colHi-colLo+1)
	h := max(0, rowHi-rowLo+1)

	out := newCanvasSized(w, h, c.palette.Clone())
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			out.cells[i*h+j] = c.cells[(colLo+i)*c.height+(rowLo+j)]
		}
	}
	return out
}

// Shift translates the canvas contents by offset without wrapping: cells
// pushed past an edge are discarded and the vacated area becomes blank.
// Palette, limits, title and legend are unaffected.
func (c *Canvas) Shift(offset Offset) *Canvas {
	shifted := newCanvasSized(c.width, c.height, c.palette)
	shifted.FuseDontAdjust(c, Position{Offset: offset})
	c.cells = shifted.cells
	return c
}

// newCanvasSized builds a blank canvas directly, without the size provider
// or validation. The palette is adopted, not copied.
func newCanvasSized(width, height int, pal *Palette) *Canvas {
	c := &Canvas{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		palette:   pal,
		autoLimit: BorderAll,
		xlimLeft:  0,
		xlimRight: 1,
		ylimBot:   0,
		ylimTop:   1,
		xMargin:   defaultXMargin,
		yMargin:   defaultYMargin,
	}
	c.Clear()
	return c
}
