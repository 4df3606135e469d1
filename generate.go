package rcgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/bodgit/rcgen/cgen"
	"github.com/bodgit/rcgen/extradata"
	"github.com/bodgit/rcgen/raymap"
	"github.com/bodgit/rcgen/texture"
)

// ErrInvalidName is returned when an input filename does not yield a valid C
// identifier.
var ErrInvalidName = errors.New("not a valid C identifier")

func symbolName(file string) (string, error) {
	name := cgen.Stem(file)
	if !cgen.IsIdentifier(name) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return name, nil
}

func (g *Generator) record(file string, a *Asset) error {
	if g.db == nil {
		return nil
	}

	sha, err := sha1File(file)
	if err != nil {
		return err
	}
	a.SHA1 = sha

	if err := g.db.Record(a); err != nil {
		return err
	}
	g.logger.Printf("Recorded %s \"%s\"\n", a.Kind, a.Name)

	return nil
}

// GenerateMap converts the map image and its extradata descriptor into the C
// source and header files. Nothing is written unless both files could be
// generated in full.
func (g *Generator) GenerateMap(imageFile, extradataFile, sourceFile, headerFile string) error {
	name, err := symbolName(imageFile)
	if err != nil {
		return err
	}

	m, err := LoadImage(imageFile)
	if err != nil {
		return err
	}
	g.logger.Printf("Decoded \"%s\" (%dx%d)\n", imageFile, m.Bounds().Dx(), m.Bounds().Dy())

	d, err := extradata.Load(extradataFile)
	if err != nil {
		return err
	}
	g.logger.Printf("Loaded %d tile(s) and %d sprite(s) from \"%s\"\n", len(d.Tiles), len(d.Sprites), extradataFile)

	rm, err := raymap.New(name, m, d)
	if err != nil {
		return err
	}

	src, hdr := new(bytes.Buffer), new(bytes.Buffer)
	if err := rm.EncodeSource(src); err != nil {
		return err
	}
	if err := rm.EncodeHeader(hdr); err != nil {
		return err
	}

	if err := ioutil.WriteFile(sourceFile, src.Bytes(), 0644); err != nil {
		return err
	}
	if err := ioutil.WriteFile(headerFile, hdr.Bytes(), 0644); err != nil {
		return err
	}
	g.logger.Printf("Wrote map \"%s\" to \"%s\" and \"%s\"\n", cgen.Lower(rm.Name), sourceFile, headerFile)

	if g.db != nil {
		missing, err := g.db.MissingTextures(rm.Textures())
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			g.logger.Printf("Map \"%s\" references unknown texture(s): %s\n", cgen.Lower(rm.Name), strings.Join(missing, ", "))
		}
	}

	return g.record(imageFile, &Asset{
		Name:       cgen.Lower(rm.Name),
		Kind:       KindMap,
		Width:      rm.Width,
		Height:     rm.Height,
		References: rm.Textures(),
	})
}

// GenerateTexture converts the image into a packed RGBA array written to w.
// If colors is positive the image is first reduced to at most that many
// colors.
func (g *Generator) GenerateTexture(imageFile string, w io.Writer, colors int) error {
	name, err := symbolName(imageFile)
	if err != nil {
		return err
	}

	m, err := LoadImage(imageFile)
	if err != nil {
		return err
	}
	g.logger.Printf("Decoded \"%s\" (%dx%d)\n", imageFile, m.Bounds().Dx(), m.Bounds().Dy())

	if colors > 0 {
		m = texture.Quantize(m, colors)
		g.logger.Printf("Reduced \"%s\" to at most %d colors\n", imageFile, colors)
	}

	t := texture.New(name, m)

	if err := t.Encode(w); err != nil {
		return err
	}
	g.logger.Printf("Wrote texture \"%s\" with %d distinct color(s)\n", cgen.Lower(t.Name), t.Colors())

	return g.record(imageFile, &Asset{
		Name:   cgen.Lower(t.Name),
		Kind:   KindTexture,
		Width:  t.Width,
		Height: t.Height,
	})
}
