package askiplot

import "errors"

// Sentinel errors returned by constructors and data-taking primitives.
// Failure sites wrap these with detail, so test with errors.Is.
//
// Conditions that merely mean "nothing sensible to draw" (out-of-range
// ratios, out-of-bounds cells, an empty legend, a series that does not fit)
// are silent no-ops, not errors.
var (
	// ErrInvalidPlotSize reports a negative width or height at construction.
	ErrInvalidPlotSize = errors.New("askiplot: invalid plot size")

	// ErrInconsistentData reports paired data series of different lengths.
	ErrInconsistentData = errors.New("askiplot: inconsistent data")

	// ErrInvalidBrushValue reports a glyph that is empty or not representable
	// in a cell.
	ErrInvalidBrushValue = errors.New("askiplot: invalid brush value")

	// ErrBMPNotSupported reports a bitmap with an unknown format tag,
	// negative dimensions, compression, or an unsupported bit depth.
	ErrBMPNotSupported = errors.New("askiplot: BMP format not supported")
)
