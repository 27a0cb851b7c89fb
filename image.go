package askiplot

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Image is a grayscale raster: one luminance sample (0..255) per pixel.
// Row 0 is the bottom scanline, so image rows line up with canvas rows and
// a decoded bitmap fuses onto a canvas without flipping.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage creates a black image of the given size. Dimensions below zero
// are treated as zero.
func NewImage(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// At returns the luminance sample at (x, y). Out-of-range coordinates
// read as black.
func (m *Image) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[x+y*m.width]
}

// Set writes the luminance sample at (x, y). Out-of-range coordinates are
// ignored.
func (m *Image) Set(x, y int, level uint8) *Image {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return m
	}
	m.pix[x+y*m.width] = level
	return m
}

// Invert replaces every sample v with 255-v, in place.
func (m *Image) Invert() *Image {
	for i, v := range m.pix {
		m.pix[i] = 255 - v
	}
	return m
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := &Image{width: m.width, height: m.height, pix: make([]uint8, len(m.pix))}
	copy(out.pix, m.pix)
	return out
}

// Resize shrinks the image to newWidth x newHeight by block averaging:
// the source is partitioned into newWidth x newHeight blocks whose sizes
// differ by at most one row or column, and each block collapses to the
// truncated mean of its samples. Growing is not supported; a request
// larger than the current size in either dimension, or smaller than 1,
// leaves the image untouched.
func (m *Image) Resize(newWidth, newHeight int) *Image {
	if newWidth < 1 || newHeight < 1 || newWidth > m.width || newHeight > m.height {
		return m
	}

	out := make([]uint8, newWidth*newHeight)
	divW, remW := m.width/newWidth, m.width%newWidth
	divH, remH := m.height/newHeight, m.height%newHeight

	rowOffset := 0
	for i := 0; i < newHeight; i++ {
		rowLen := divH
		if i < remH {
			rowLen++
		}
		colOffset := 0
		for j := 0; j < newWidth; j++ {
			colLen := divW
			if j < remW {
				colLen++
			}
			sum := 0
			for bi := 0; bi < rowLen; bi++ {
				for bj := 0; bj < colLen; bj++ {
					sum += int(m.pix[(colOffset+bj)+(rowOffset+bi)*m.width])
				}
			}
			out[j+i*newWidth] = uint8(sum / (rowLen * colLen))
			colOffset += colLen
		}
		rowOffset += rowLen
	}

	m.pix = out
	m.width = newWidth
	m.height = newHeight
	return m
}

// BMP header layout (little-endian), relative to the start of the file.
const (
	bmpOffPixelData   = 10
	bmpOffWidth       = 18
	bmpOffHeight      = 22
	bmpOffBitCount    = 28
	bmpOffCompression = 30
	bmpHeaderLen      = 34
)

// OpenBMP reads and decodes the BMP file at path.
func OpenBMP(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeBMP(f)
}

// DecodeBMP decodes an uncompressed BMP image from r into a grayscale
// [Image]. Supported bit depths are 1 (each bit maps to 0 or 255), 24 and
// 32 (luminance is the unweighted mean of the three color channels; the
// fourth channel of 32-bit pixels is ignored). Compressed payloads,
// top-down bitmaps (negative dimensions) and any other bit depth fail
// with [ErrBMPNotSupported].
//
// Example:
//
//	img, err := askiplot.OpenBMP("logo.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.DrawImage(img, nil, askiplot.Center)
func DecodeBMP(r io.Reader) (*Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) < bmpHeaderLen {
		return nil, fmt.Errorf("%w: truncated header (%d bytes)", ErrBMPNotSupported, len(raw))
	}

	switch tag := string(raw[:2]); tag {
	case "BM", "BA", "CI", "CP", "IC", "PC":
	default:
		return nil, fmt.Errorf("%w: unknown format tag %q", ErrBMPNotSupported, string(raw[:2]))
	}

	offset := int(int32(binary.LittleEndian.Uint32(raw[bmpOffPixelData:])))
	width := int(int32(binary.LittleEndian.Uint32(raw[bmpOffWidth:])))
	height := int(int32(binary.LittleEndian.Uint32(raw[bmpOffHeight:])))
	bitCount := int(int16(binary.LittleEndian.Uint16(raw[bmpOffBitCount:])))
	compression := int(int32(binary.LittleEndian.Uint32(raw[bmpOffCompression:])))

	Logger().Debug("askiplot: BMP header",
		"width", width, "height", height,
		"bits_per_pixel", bitCount, "compression", compression,
		"pixel_offset", offset)

	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrBMPNotSupported, width, height)
	}
	if compression != 0 {
		return nil, fmt.Errorf("%w: compression %d", ErrBMPNotSupported, compression)
	}
	if offset < 0 || offset > len(raw) {
		return nil, fmt.Errorf("%w: pixel data offset %d out of range", ErrBMPNotSupported, offset)
	}

	m := NewImage(width, height)
	payload := raw[offset:]
	switch bitCount {
	case 1:
		err = m.readPayload1(payload)
	case 24:
		err = m.readPayload24(payload)
	case 32:
		err = m.readPayload32(payload)
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrBMPNotSupported, bitCount)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// readPayload1 decodes 1-bit pixel data: bits are consumed MSB-first and a
// set bit reads as white (255). Every scanline starts on a byte boundary.
func (m *Image) readPayload1(payload []byte) error {
	fullBytes := m.width / 8
	residualBits := m.width % 8
	rowBytes := fullBytes
	if residualBits > 0 {
		rowBytes++
	}
	if len(payload) < m.height*rowBytes {
		return fmt.Errorf("%w: truncated 1-bit pixel data", ErrBMPNotSupported)
	}

	idx := 0
	cur := 0
	for i := 0; i < m.height; i++ {
		for j := 0; j < fullBytes; j++ {
			b := payload[cur]
			cur++
			for mask := byte(0x80); mask != 0; mask >>= 1 {
				if b&mask != 0 {
					m.pix[idx] = 255
				}
				idx++
			}
		}
		if residualBits > 0 {
			b := payload[cur]
			cur++
			mask := byte(0x80)
			for j := 0; j < residualBits; j++ {
				if b&mask != 0 {
					m.pix[idx] = 255
				}
				idx++
				mask >>= 1
			}
		}
	}
	return nil
}

// readPayload24 decodes 24-bit pixel data. Scanlines are padded to 4-byte
// boundaries; the pad after the final scanline may be absent.
func (m *Image) readPayload24(payload []byte) error {
	pad := (4 - (m.width*3)%4) % 4
	rowBytes := m.width*3 + pad
	if m.height > 0 && len(payload) < (m.height-1)*rowBytes+m.width*3 {
		return fmt.Errorf("%w: truncated 24-bit pixel data", ErrBMPNotSupported)
	}

	idx := 0
	cur := 0
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			sum := int(payload[cur]) + int(payload[cur+1]) + int(payload[cur+2])
			m.pix[idx] = uint8(sum / 3)
			idx++
			cur += 3
		}
		cur += pad
	}
	return nil
}

// readPayload32 decodes 32-bit pixel data. Rows are naturally aligned, so
// there is no padding; the fourth channel is skipped.
func (m *Image) readPayload32(payload []byte) error {
	if len(payload) < m.height*m.width*4 {
		return fmt.Errorf("%w: truncated 32-bit pixel data", ErrBMPNotSupported)
	}

	idx := 0
	cur := 0
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			sum := int(payload[cur]) + int(payload[cur+1]) + int(payload[cur+2])
			m.pix[idx] = uint8(sum / 3)
			idx++
			cur += 4
		}
	}
	return nil
}

// FromImage converts any [image.Image] to a grayscale [Image] using the
// same unweighted channel mean as the BMP decoder. Standard library images
// put y=0 at the top, so rows are flipped to this package's bottom-up
// order.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := NewImage(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		srcY := b.Max.Y - 1 - y
		for x := 0; x < m.width; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, srcY).RGBA()
			m.pix[x+y*m.width] = uint8(((r + g + bl) / 3) >> 8)
		}
	}
	return m
}

// FromImageScaled converts src like [FromImage] after resampling it to
// width x height with Catmull-Rom interpolation. Unlike [Image.Resize]
// this can also grow the image.
func FromImageScaled(src image.Image, width, height int) *Image {
	if width < 1 || height < 1 {
		return NewImage(0, 0)
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
