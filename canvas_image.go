package askiplot

// DrawImage draws img onto the canvas at pos, shrinking it first if it
// exceeds the canvas size. A nil gamma uses the default [FixedGamma]
// density ramp.
func (c *Canvas) DrawImage(img *Image, gamma Gamma, pos Position) *Canvas {
	return c.DrawImageFit(img, gamma, pos, c.width, c.height)
}

// DrawImageFit draws img onto the canvas at pos, bounded by maxWidth x
// maxHeight cells. An image exceeding the bounds is block-average resized
// to fit; if the resize cannot apply (see [Image.Resize]) the overflowing
// edge is cropped instead. Each pixel becomes one cell through gamma,
// mapped in raster order on an off-screen canvas that is then fused at
// pos with position adjustment.
func (c *Canvas) DrawImageFit(img *Image, gamma Gamma, pos Position, maxWidth, maxHeight int) *Canvas {
	if img == nil || img.Width() == 0 || img.Height() == 0 {
		return c
	}
	if gamma == nil {
		gamma = NewFixedGamma("")
	}

	fit := img
	if img.Width() > maxWidth || img.Height() > maxHeight {
		fit = img.Clone().Resize(maxWidth, maxHeight)
	}

	lenW := min(img.Width(), maxWidth)
	lenH := min(img.Height(), maxHeight)
	if lenW < 1 || lenH < 1 {
		return c
	}

	sub := newCanvasSized(lenW, lenH, NewPalette())
	for j := lenH - 1; j >= 0; j-- {
		for i := 0; i < lenW; i++ {
			sub.cells[i*sub.height+j] = gamma.Map(fit.At(i, j)).Cell()
		}
	}
	return c.Fuse(sub, pos)
}
