// Package askiplot draws plots and pictures made of ASCII characters.
//
// # Overview
//
// askiplot composes text-mode graphics on a rectangular canvas of character
// cells. It provides free-form drawing (text, lines, boxes, images), chart
// builders (bar charts, grouped bars, histograms), and a composition layer
// that fuses independently drawn canvases into a single picture or arranges
// them in a grid. The result serializes to a plain string ready for any
// terminal or log file.
//
// # Quick Start
//
//	import "github.com/askiplot/askiplot"
//
//	// Create a canvas sized to the terminal
//	c, err := askiplot.New(0, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.DrawLineHorizontalAtRow(0).
//	    DrawText("hello", askiplot.Center).
//	    DrawBorders(askiplot.BorderAll)
//
//	fmt.Print(c.Serialize())
//
// # Coordinate System
//
// Canvas coordinates follow mathematical convention:
//   - Origin (0,0) at the bottom-left cell
//   - Columns increase rightward
//   - Rows increase upward
//
// Positions combine a column/row offset with one of nine anchors (the four
// sides, the four corners, and the center), so content can be placed
// relative to any part of the canvas without computing absolute cells.
//
// # Brushes and Palettes
//
// Every cell holds a glyph painted by a brush. Named brushes live in a
// per-canvas palette, which lets a whole family of cells be restyled after
// drawing with [Canvas.Redraw]. Anonymous brushes paint fixed glyphs that no
// later restyling touches.
//
// # Charts
//
// [BarChart] plots bar series from raw coordinates, value lists, or maps.
// [BarGroup] collects several series and renders them side by side.
// [Histogram] bins a sample and draws the counts. All chart types embed
// [Canvas], so the free-form drawing API stays available on them.
//
// # Images
//
// [DecodeBMP] reads uncompressed 1-, 24- and 32-bit BMP files into a
// grayscale [Image], and [FromImage] converts any image.Image. A [Gamma]
// maps gray levels to brushes when an image is drawn onto a canvas; the
// built-in gammas cover density ramps, random dithering and text fills.
package askiplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
