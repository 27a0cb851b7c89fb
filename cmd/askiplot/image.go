package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/askiplot/askiplot"
	"github.com/spf13/cobra"
)

func newImageCommand() *cobra.Command {
	var (
		width     int
		height    int
		glyphs    string
		random    bool
		text      string
		threshold int
		invert    bool
	)

	cmd := &cobra.Command{
		Use:   "image FILE",
		Short: "Render an image as ASCII art",
		Long: `image converts FILE to luminance samples and paints them with a
density ramp. BMP files (1, 24 and 32 bits per pixel, uncompressed) are
decoded directly; PNG and JPEG go through the standard library decoders
and are resampled to the canvas when larger.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := askiplot.New(width, height)
			if err != nil {
				return err
			}

			img, err := loadImage(args[0], c.Width(), c.Height())
			if err != nil {
				return err
			}
			if invert {
				img.Invert()
			}

			c.DrawImage(img, buildGamma(glyphs, text, random, threshold), askiplot.SouthWest)
			fmt.Fprint(cmd.OutOrStdout(), c.Serialize())
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 0, "Canvas width (0 = terminal width)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Canvas height (0 = terminal height)")
	cmd.Flags().StringVar(&glyphs, "gamma", "", "Density ramp, darkest to brightest (default \""+askiplot.DefaultGammaGlyphs+"\")")
	cmd.Flags().BoolVar(&random, "random", false, "Pick a random ramp glyph per bright sample")
	cmd.Flags().StringVar(&text, "text", "", "Spell TEXT across bright samples instead of a ramp")
	cmd.Flags().IntVar(&threshold, "threshold", 128, "Bright/dark luminance bound for --random and --text")
	cmd.Flags().BoolVar(&invert, "invert", false, "Invert luminance before mapping")

	return cmd
}

// loadImage decodes path into luminance samples. BMP is handled by this
// package's own decoder; everything else is decoded by the standard
// library and prescaled to the canvas when it would not fit.
func loadImage(path string, maxWidth, maxHeight int) (*askiplot.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return askiplot.OpenBMP(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	b := src.Bounds()
	if b.Dx() > maxWidth || b.Dy() > maxHeight {
		return askiplot.FromImageScaled(src, maxWidth, maxHeight), nil
	}
	return askiplot.FromImage(src), nil
}

func buildGamma(glyphs, text string, random bool, threshold int) askiplot.Gamma {
	t := uint8(min(max(threshold, 0), 255))
	switch {
	case text != "":
		return askiplot.NewTextGamma(text).SetZeroThreshold(t)
	case random:
		return askiplot.NewRandomGamma(glyphs).SetZeroThreshold(t)
	default:
		return askiplot.NewFixedGamma(glyphs)
	}
}
