package texture

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/rcgen/cgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	tables := []struct {
		c    color.NRGBA
		want uint32
	}{
		{color.NRGBA{0x00, 0x00, 0x00, 0x00}, 0x00000000},
		{color.NRGBA{0xff, 0x00, 0x00, 0x00}, 0xff000000},
		{color.NRGBA{0x00, 0xff, 0x00, 0x00}, 0x00ff0000},
		{color.NRGBA{0x00, 0x00, 0xff, 0x00}, 0x0000ff00},
		{color.NRGBA{0x00, 0x00, 0x00, 0xff}, 0x000000ff},
		{color.NRGBA{0xff, 0xff, 0xff, 0xff}, 0xffffffff},
		{color.NRGBA{0x12, 0x34, 0x56, 0x78}, 0x12345678},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Pack(table.c))
		assert.Equal(t, table.c, Unpack(table.want))
	}

	for _, v := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
		for _, c := range []color.NRGBA{{v, 0, 0, 0}, {0, v, 0, 0}, {0, 0, v, 0}, {0, 0, 0, v}, {v, v, v, v}} {
			assert.Equal(t, c, Unpack(Pack(c)))
		}
	}
}

func TestNew(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	m.SetNRGBA(1, 0, color.NRGBA{0x00, 0x00, 0x00, 0x00})

	tex := New("Wall", m)
	assert.Equal(t, []uint32{0xff0000ff, 0x0}, tex.Pixels)

	b := new(bytes.Buffer)
	require.NoError(t, tex.Encode(b))
	assert.Equal(t, `#define WALL_WIDTH 2
#define WALL_HEIGHT 1

unsigned int wall[WALL_WIDTH*WALL_HEIGHT] = {
    0xff0000ff, 0x0
};
`, b.String())
}

func TestNewSemiTransparent(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.SetNRGBA(0, 0, color.NRGBA{0x12, 0x34, 0x56, 0x78})

	assert.Equal(t, []uint32{0x12345678}, New("glass", m).Pixels)
}

func TestNewOpaqueByDefault(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 1))
	g.SetGray(0, 0, color.Gray{0x00})
	g.SetGray(1, 0, color.Gray{0x80})
	assert.Equal(t, []uint32{0x000000ff, 0x808080ff}, New("gray", g).Pixels)

	p := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.RGBA{0x10, 0x20, 0x30, 0xff}})
	assert.Equal(t, []uint32{0x102030ff}, New("pal", p).Pixels)
}

func TestEncodeLineLength(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}

	b := new(bytes.Buffer)
	require.NoError(t, New("big", m).Encode(b))

	for _, line := range bytes.Split(b.Bytes(), []byte("\n")) {
		assert.Less(t, len(line), cgen.MaxColumn)
	}

	got, err := cgen.ReadArray(b, "big")
	require.NoError(t, err)
	assert.Len(t, got, 256)
	for _, v := range got {
		assert.Equal(t, uint32(0xffffffff), v)
	}
}

func TestQuantize(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), uint8(y * 16), 0x40, 0xff})
		}
	}

	assert.Equal(t, 256, New("grad", m).Colors())

	q := Quantize(m, 8)
	assert.Equal(t, m.Bounds(), q.Bounds())
	assert.LessOrEqual(t, New("grad", q).Colors(), 8)

	assert.Equal(t, image.Image(m), Quantize(m, 0))
}

func channelError(a, b color.NRGBA) int {
	abs := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return abs(a.R, b.R) + abs(a.G, b.G) + abs(a.B, b.B)
}

func TestQuantizeLargePalette(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 4), uint8(y * 4), uint8((x + y) * 2), 0xff})
		}
	}

	for _, n := range []int{MaxColors, MaxColors + 1, 300, 1000} {
		q := Quantize(m, n)

		pm, ok := q.(*image.Paletted)
		require.True(t, ok)
		assert.LessOrEqual(t, len(pm.Palette), MaxColors)

		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				got := color.NRGBAModel.Convert(q.At(x, y)).(color.NRGBA)
				require.LessOrEqual(t, channelError(m.NRGBAAt(x, y), got), 192, "n=%d (%d, %d)", n, x, y)
			}
		}
	}
}
