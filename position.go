package askiplot

// Offset is an integer column/row displacement.
type Offset struct {
	Col int
	Row int
}

// Plus returns the componentwise sum of two offsets.
func (o Offset) Plus(p Offset) Offset {
	return Offset{Col: o.Col + p.Col, Row: o.Row + p.Row}
}

// Minus returns the componentwise difference of two offsets.
func (o Offset) Minus(p Offset) Offset {
	return Offset{Col: o.Col - p.Col, Row: o.Row - p.Row}
}

// Anchor is one of the nine compass points a Position is relative to.
// SouthWest is the canvas origin: a SouthWest position is already absolute,
// its offset read directly as (column, row).
type Anchor uint8

const (
	AnchorSouthWest Anchor = iota
	AnchorSouth
	AnchorSouthEast
	AnchorWest
	AnchorCenter
	AnchorEast
	AnchorNorthWest
	AnchorNorth
	AnchorNorthEast
)

// String returns the compass-point name of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorSouthWest:
		return "SouthWest"
	case AnchorSouth:
		return "South"
	case AnchorSouthEast:
		return "SouthEast"
	case AnchorWest:
		return "West"
	case AnchorCenter:
		return "Center"
	case AnchorEast:
		return "East"
	case AnchorNorthWest:
		return "NorthWest"
	case AnchorNorth:
		return "North"
	case AnchorNorthEast:
		return "NorthEast"
	}
	return "Anchor(?)"
}

// Position names a canvas location: an anchor plus an offset applied after
// the anchor is resolved against the canvas size. The zero Position is the
// absolute origin (0, 0).
//
// The predeclared anchor positions cover the common cases:
//
//	c.DrawText("top left", askiplot.NorthWest)
//	c.DrawText("nudged", askiplot.Center.Plus(askiplot.Offset{Col: 2}))
//	c.DrawText("exact", askiplot.Abs(3, 1))
type Position struct {
	Offset Offset
	Anchor Anchor
}

// The nine anchor positions with zero offset.
var (
	North     = Position{Anchor: AnchorNorth}
	NorthEast = Position{Anchor: AnchorNorthEast}
	East      = Position{Anchor: AnchorEast}
	SouthEast = Position{Anchor: AnchorSouthEast}
	South     = Position{Anchor: AnchorSouth}
	SouthWest = Position{Anchor: AnchorSouthWest}
	West      = Position{Anchor: AnchorWest}
	NorthWest = Position{Anchor: AnchorNorthWest}
	Center    = Position{Anchor: AnchorCenter}
)

// Abs returns the absolute position (col, row).
func Abs(col, row int) Position {
	return Position{Offset: Offset{Col: col, Row: row}}
}

// Plus returns the position displaced by o.
func (p Position) Plus(o Offset) Position {
	return Position{Offset: p.Offset.Plus(o), Anchor: p.Anchor}
}

// Minus returns the position displaced by -o.
func (p Position) Minus(o Offset) Position {
	return Position{Offset: p.Offset.Minus(o), Anchor: p.Anchor}
}

// Absolute reports whether the position is anchored at the origin.
func (p Position) Absolute() bool {
	return p.Anchor == AnchorSouthWest
}

// Resolve maps the position to absolute (column, row) coordinates on a
// canvas of the given size. Edge midpoints use integer division; the result
// may lie outside the canvas when the offset pushes it there.
func (p Position) Resolve(width, height int) (col, row int) {
	var base Offset
	switch p.Anchor {
	case AnchorNorth:
		base = Offset{Col: width / 2, Row: height - 1}
	case AnchorNorthEast:
		base = Offset{Col: width - 1, Row: height - 1}
	case AnchorEast:
		base = Offset{Col: width - 1, Row: height / 2}
	case AnchorSouthEast:
		base = Offset{Col: width - 1}
	case AnchorSouth:
		base = Offset{Col: width / 2}
	case AnchorWest:
		base = Offset{Row: height / 2}
	case AnchorNorthWest:
		base = Offset{Row: height - 1}
	case AnchorCenter:
		base = Offset{Col: width / 2, Row: height / 2}
	}
	return base.Col + p.Offset.Col, base.Row + p.Offset.Row
}

// CalcBoxPosition converts a position that anchors a boxWidth x boxHeight
// box into the position of the box's south-west corner, placed so the whole
// box sits on the anchor's side. A NorthEast position, for example, yields
// the corner of a box lying entirely below and left of it.
func CalcBoxPosition(p Position, boxWidth, boxHeight int) Position {
	switch p.Anchor {
	case AnchorNorth:
		return p.Minus(Offset{Col: boxWidth / 2, Row: boxHeight})
	case AnchorEast:
		return p.Minus(Offset{Col: boxWidth, Row: boxHeight / 2})
	case AnchorSouthEast:
		return p.Minus(Offset{Col: boxWidth})
	case AnchorSouth:
		return p.Minus(Offset{Col: boxWidth / 2})
	case AnchorSouthWest:
		return p
	case AnchorWest:
		return p.Minus(Offset{Row: boxHeight / 2})
	case AnchorNorthWest:
		return p.Minus(Offset{Row: boxHeight})
	case AnchorCenter:
		return p.Minus(Offset{Col: boxWidth / 2, Row: boxHeight / 2})
	default:
		return p.Minus(Offset{Col: boxWidth, Row: boxHeight})
	}
}

// adjustForBox clamps the resolved corner of a boxW x boxH box so the box
// stays on a width x height canvas. growsUpward selects whether the box
// extends toward higher rows (fused canvases, bars) or lower rows (text).
// The shared rule: floor to the near edge first, then pull back until the
// box fits.
func adjustForBox(col, row, boxW, boxH int, growsUpward bool, width, height int) (int, int) {
	col = max(0, col)
	row = min(height-1, max(0, row))

	freeCols := width - col
	freeRows := row + 1
	if growsUpward {
		freeRows = height - row
	}

	if freeCols < boxW {
		col = max(0, width-boxW)
	}
	if freeRows < boxH {
		if growsUpward {
			row = max(0, height-boxH)
		} else {
			row = min(height-1, boxH-1)
		}
	}
	return col, row
}
