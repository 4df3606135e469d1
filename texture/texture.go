/*
Package texture converts an image into the packed RGBA pixel array used by the
raycaster for wall and sprite textures.

Each pixel is stored as an unsigned 32-bit value with red in the most
significant byte followed by green, blue and finally alpha. Images without an
alpha channel are treated as fully opaque.
*/
package texture

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// MaxColors is the largest palette an image.Paletted can index
const MaxColors = 256

// Texture is a decoded texture ready to be written out as C.
type Texture struct {
	Name          string
	Width, Height int
	Pixels        []uint32
}

// Pack returns c packed as R<<24 | G<<16 | B<<8 | A.
func Pack(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// New returns the texture called name holding the pixels of m in row-major
// order.
func New(name string, m image.Image) *Texture {
	b := m.Bounds()
	t := &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]uint32, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Pixels = append(t.Pixels, Pack(color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)))
		}
	}
	return t
}

// Quantize returns a copy of m reduced to at most n colors using median cut
// quantization. If n is not positive, m is returned unchanged. n is capped at
// MaxColors.
func Quantize(m image.Image, n int) image.Image {
	if n <= 0 {
		return m
	}
	if n > MaxColors {
		n = MaxColors
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// Colors returns the number of distinct packed values in the texture.
func (t *Texture) Colors() int {
	seen := make(map[uint32]struct{})
	for _, p := range t.Pixels {
		seen[p] = struct{}{}
	}
	return len(seen)
}
