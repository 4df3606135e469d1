package raymap

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/rcgen/cgen"
)

type encoder struct {
	b strings.Builder
}

func (e *encoder) printf(format string, a ...interface{}) {
	fmt.Fprintf(&e.b, format, a...)
}

func (e *encoder) list(items []string) {
	for i, s := range items {
		e.b.WriteString(strings.Repeat(" ", cgen.Indent))
		e.b.WriteString(s)
		if i < len(items)-1 {
			e.b.WriteString(",\n")
		}
	}
}

func visible(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (e *encoder) encodeSource(m *Map) {
	name := cgen.Lower(m.Name)

	e.printf("#include <map.h>\n#include <stddef.h>\n\n")
	for _, t := range m.textures {
		e.printf("#include <%s.h>\n", t)
	}

	e.printf("\n\nTile %s_tileset[%d] = {\n", name, len(m.Tiles))
	tiles := make([]string, 0, len(m.Tiles))
	for _, t := range m.Tiles {
		tiles = append(tiles, fmt.Sprintf("{&%s, NULL}", t.Texture))
	}
	e.list(tiles)

	e.printf("\n};\n\nSprite %s_sprites[%d] = {\n", name, len(m.Sprites))
	sprites := make([]string, 0, len(m.Sprites))
	for _, s := range m.Sprites {
		sprites = append(sprites, fmt.Sprintf("{TO_FIXED(%s), TO_FIXED(%s), 0, &%s, %d, 0, 0, NULL}", s.X, s.Y, s.Texture, visible(s.Visible)))
	}
	e.list(sprites)

	e.printf("\n};\n\nunsigned char %s_data[%d] = {\n", name, len(m.Data))
	e.b.WriteString(cgen.HexList(m.Data))

	e.printf("\n};\n\nMap %s = {\n", name)
	e.printf("    %s_data,\n", name)
	e.printf("    %d, %d,\n", m.Width, m.Height)
	e.printf("    %s_tileset,\n", name)
	e.printf("    %s_sprites, %d,\n", name, len(m.Sprites))
	e.printf("    NULL\n};\n\n")
}

func (e *encoder) encodeHeader(m *Map) {
	guard := cgen.Upper(m.Name) + "_H"

	e.printf("#ifndef %s\n#define %s\n\n", guard, guard)
	e.printf("#include <map.h>\n\n")
	e.printf("extern Map %s;\n\n", cgen.Lower(m.Name))
	e.printf("#endif\n\n")
}

// EncodeSource writes the C translation unit defining the map to w.
func (m *Map) EncodeSource(w io.Writer) error {
	var e encoder
	e.encodeSource(m)
	_, err := io.WriteString(w, e.b.String())
	return err
}

// EncodeHeader writes the C header declaring the map to w.
func (m *Map) EncodeHeader(w io.Writer) error {
	var e encoder
	e.encodeHeader(m)
	_, err := io.WriteString(w, e.b.String())
	return err
}
