/*
Package raymap converts a map image and its extradata descriptor into the C
source and header consumed by the raycaster.

Each pixel of the image becomes one byte of map data. Pure white is the empty
cell, index 0, and any other color must match one of the descriptor tiles, in
which case the cell holds the 1-based position of the first matching tile.
*/
package raymap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/rcgen/extradata"
)

const (
	// White is the color of an empty cell
	White = 0xffffff

	// MaxTiles is the number of tiles that can be indexed by a byte
	MaxTiles = 0xff
)

var errTooManyTiles = fmt.Errorf("raymap: more than %d tiles", MaxTiles)

// PixelError is returned when a pixel color matches none of the tiles.
type PixelError struct {
	X, Y  int
	Color uint32
}

func (e *PixelError) Error() string {
	return fmt.Sprintf("no tile for color #%06x at (%d, %d)", e.Color, e.X, e.Y)
}

// Map is a tile map ready to be written out as C.
type Map struct {
	Name          string
	Width, Height int
	Data          []byte
	Tiles         []extradata.Tile
	Sprites       []extradata.Sprite

	textures []string
}

// RGB returns the 24-bit value of c, ignoring any alpha.
func RGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// New builds the map called name from the image m using the tiles and
// sprites in d.
func New(name string, m image.Image, d *extradata.Descriptor) (*Map, error) {
	if d == nil {
		return nil, errors.New("raymap: nil descriptor")
	}
	if len(d.Tiles) > MaxTiles {
		return nil, errTooManyTiles
	}

	index := make(map[uint32]byte, len(d.Tiles))
	for i := len(d.Tiles) - 1; i >= 0; i-- {
		index[d.Tiles[i].Color] = byte(i + 1)
	}

	b := m.Bounds()
	rm := &Map{
		Name:     name,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Data:     make([]byte, 0, b.Dx()*b.Dy()),
		Tiles:    d.Tiles,
		Sprites:  d.Sprites,
		textures: d.Textures(),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := RGB(m.At(x, y))
			if c == White {
				rm.Data = append(rm.Data, 0)
				continue
			}
			i, ok := index[c]
			if !ok {
				return nil, &PixelError{X: x - b.Min.X, Y: y - b.Min.Y, Color: c}
			}
			rm.Data = append(rm.Data, i)
		}
	}

	return rm, nil
}

// Index returns the tile index of the cell at (x, y).
func (m *Map) Index(x, y int) byte {
	return m.Data[y*m.Width+x]
}

// Textures returns the texture symbols the map depends on.
func (m *Map) Textures() []string {
	return m.textures
}
