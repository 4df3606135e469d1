package extradata

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `{
  "tiles": [
    { "color": "#FF0000", "texture": "brick" },
    { "color": "#00ff00", "texture": "moss" },
    { "color": "#0000FF", "texture": "brick" }
  ],
  "sprites": [
    { "x": 1.5, "y": 2, "texture": "barrel", "visible": true },
    { "x": 3, "y": 4.25, "texture": "moss", "visible": false }
  ]
}`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(example))
	require.NoError(t, err)

	assert.Equal(t, []Tile{
		{Color: 0xff0000, Texture: "brick"},
		{Color: 0x00ff00, Texture: "moss"},
		{Color: 0x0000ff, Texture: "brick"},
	}, d.Tiles)

	assert.Equal(t, []Sprite{
		{X: json.Number("1.5"), Y: json.Number("2"), Texture: "barrel", Visible: true},
		{X: json.Number("3"), Y: json.Number("4.25"), Texture: "moss", Visible: false},
	}, d.Sprites)

	assert.Equal(t, []string{"brick", "moss", "barrel"}, d.Textures())
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse([]byte(`{"tiles": [], "sprites": []}`))
	require.NoError(t, err)
	assert.Empty(t, d.Tiles)
	assert.Empty(t, d.Sprites)
	assert.Empty(t, d.Textures())
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{``, `{`, `{"tiles": [}`, `tiles`} {
		_, err := Parse([]byte(s))
		assert.Equal(t, ErrMalformedJSON, err, s)
	}
}

func TestParseFieldErrors(t *testing.T) {
	tables := []struct {
		json  string
		field string
	}{
		{`{"sprites": []}`, "tiles"},
		{`{"tiles": []}`, "sprites"},
		{`{"tiles": null, "sprites": []}`, "tiles"},
		{`{"tiles": [{"texture": "brick"}], "sprites": []}`, "tiles[0].color"},
		{`{"tiles": [{"color": "#ffffff"}], "sprites": []}`, "tiles[0].texture"},
		{`{"tiles": [{"color": "#ffffff", "texture": "a-b"}], "sprites": []}`, "tiles[0].texture"},
		{`{"tiles": [], "sprites": [{"y": 1, "texture": "a", "visible": true}]}`, "sprites[0].x"},
		{`{"tiles": [], "sprites": [{"x": 1, "texture": "a", "visible": true}]}`, "sprites[0].y"},
		{`{"tiles": [], "sprites": [{"x": 1, "y": 1, "visible": true}]}`, "sprites[0].texture"},
		{`{"tiles": [], "sprites": [{"x": 1, "y": 1, "texture": "a"}]}`, "sprites[0].visible"},
	}

	for _, table := range tables {
		_, err := Parse([]byte(table.json))
		var fe *FieldError
		if assert.True(t, errors.As(err, &fe), table.json) {
			assert.Equal(t, table.field, fe.Field, table.json)
		}
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, s := range []string{
		`[]`,
		`{"tiles": {}, "sprites": []}`,
		`{"tiles": [{"color": 5, "texture": "a"}], "sprites": []}`,
		`{"tiles": [], "sprites": [{"x": 1, "y": 1, "texture": "a", "visible": 1}]}`,
	} {
		_, err := Parse([]byte(s))
		var fe *FieldError
		assert.True(t, errors.As(err, &fe), s)
		assert.NotEqual(t, ErrMalformedJSON, err, s)
	}
}

func TestParseColor(t *testing.T) {
	good := map[string]uint32{
		"#FF0000": 0xff0000,
		"#ff0000": 0xff0000,
		"#000000": 0,
		"#ffffff": 0xffffff,
		"#1":      1,
	}
	for s, want := range good {
		c, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c, s)
	}

	for _, s := range []string{"", "#", "FF0000", "#GG0000", "#0x1234", "#-12345", "#1234567"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestParseColorError(t *testing.T) {
	_, err := Parse([]byte(`{"tiles": [{"color": "#ff0000", "texture": "a"}, {"color": "red", "texture": "b"}], "sprites": []}`))
	var ce *ColorError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Tile)
	assert.Equal(t, "red", ce.Value)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "e1m1.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(example), 0644))

	d, err := Load(file)
	require.NoError(t, err)
	assert.Len(t, d.Tiles, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.NotEqual(t, ErrMalformedJSON, err)
}
