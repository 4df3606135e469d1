/*
Package extradata implements the JSON descriptor that accompanies a map image.

The descriptor lists the tiles, in the order that defines their 1-based index
in the map data, and the sprites placed on the map:

	{
	  "tiles":   [ { "color": "#RRGGBB", "texture": "<symbol>" }, ... ],
	  "sprites": [ { "x": <number>, "y": <number>, "texture": "<symbol>", "visible": <bool> }, ... ]
	}
*/
package extradata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/bodgit/rcgen/cgen"
)

// ErrMalformedJSON is returned when the descriptor is not valid JSON.
var ErrMalformedJSON = errors.New("extradata: malformed JSON")

var (
	errMissing       = errors.New("missing field")
	errInvalidSymbol = errors.New("not a valid C identifier")
	errColorSyntax   = errors.New("expected #RRGGBB")
)

// FieldError describes a missing or mistyped descriptor field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ColorError describes a tile color that could not be parsed.
type ColorError struct {
	Tile  int
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("tiles[%d].color: %q: %v", e.Tile, e.Value, e.Err)
}

func (e *ColorError) Unwrap() error { return e.Err }

// Tile binds a map color to a texture.
type Tile struct {
	Color   uint32
	Texture string
}

// Sprite places a texture in the world. X and Y hold the number exactly as
// written in the descriptor.
type Sprite struct {
	X, Y    json.Number
	Texture string
	Visible bool
}

// Descriptor is the parsed contents of an extradata file.
type Descriptor struct {
	Tiles   []Tile
	Sprites []Sprite
}

type jsonTile struct {
	Color   *string `json:"color"`
	Texture *string `json:"texture"`
}

type jsonSprite struct {
	X       *json.Number `json:"x"`
	Y       *json.Number `json:"y"`
	Texture *string      `json:"texture"`
	Visible *bool        `json:"visible"`
}

type jsonDescriptor struct {
	Tiles   *[]jsonTile   `json:"tiles"`
	Sprites *[]jsonSprite `json:"sprites"`
}

// ParseColor parses a color of the form #RRGGBB into a 24-bit value.
func ParseColor(s string) (uint32, error) {
	if len(s) < 2 || len(s) > 7 || s[0] != '#' {
		return 0, errColorSyntax
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, errColorSyntax
	}
	return uint32(v), nil
}

func symbol(field string, s *string) (string, error) {
	switch {
	case s == nil:
		return "", &FieldError{Field: field, Err: errMissing}
	case !cgen.IsIdentifier(*s):
		return "", &FieldError{Field: field, Err: errInvalidSymbol}
	}
	return *s, nil
}

// Parse decodes a descriptor from b.
func Parse(b []byte) (*Descriptor, error) {
	if !json.Valid(b) {
		return nil, ErrMalformedJSON
	}

	var jd jsonDescriptor
	if err := json.Unmarshal(b, &jd); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return nil, &FieldError{Field: te.Field, Err: fmt.Errorf("cannot use %s as %s", te.Value, te.Type)}
		}
		return nil, &FieldError{Err: err}
	}

	if jd.Tiles == nil {
		return nil, &FieldError{Field: "tiles", Err: errMissing}
	}
	if jd.Sprites == nil {
		return nil, &FieldError{Field: "sprites", Err: errMissing}
	}

	d := &Descriptor{
		Tiles:   make([]Tile, 0, len(*jd.Tiles)),
		Sprites: make([]Sprite, 0, len(*jd.Sprites)),
	}

	for i, t := range *jd.Tiles {
		if t.Color == nil {
			return nil, &FieldError{Field: fmt.Sprintf("tiles[%d].color", i), Err: errMissing}
		}
		c, err := ParseColor(*t.Color)
		if err != nil {
			return nil, &ColorError{Tile: i, Value: *t.Color, Err: err}
		}
		texture, err := symbol(fmt.Sprintf("tiles[%d].texture", i), t.Texture)
		if err != nil {
			return nil, err
		}
		d.Tiles = append(d.Tiles, Tile{Color: c, Texture: texture})
	}

	for i, s := range *jd.Sprites {
		field := func(name string) string {
			return fmt.Sprintf("sprites[%d].%s", i, name)
		}
		switch {
		case s.X == nil:
			return nil, &FieldError{Field: field("x"), Err: errMissing}
		case s.Y == nil:
			return nil, &FieldError{Field: field("y"), Err: errMissing}
		case s.Visible == nil:
			return nil, &FieldError{Field: field("visible"), Err: errMissing}
		}
		texture, err := symbol(field("texture"), s.Texture)
		if err != nil {
			return nil, err
		}
		d.Sprites = append(d.Sprites, Sprite{
			X:       *s.X,
			Y:       *s.Y,
			Texture: texture,
			Visible: *s.Visible,
		})
	}

	return d, nil
}

// Load reads and parses the descriptor stored in file.
func Load(file string) (*Descriptor, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Textures returns the distinct texture symbols referenced by the tiles and
// then the sprites, in the order they are first seen.
func (d *Descriptor) Textures() []string {
	seen := make(map[string]struct{})
	var textures []string
	add := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			textures = append(textures, s)
		}
	}
	for _, t := range d.Tiles {
		add(t.Texture)
	}
	for _, s := range d.Sprites {
		add(s.Texture)
	}
	return textures
}
