package texture

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/rcgen/cgen"
)

// Encode writes the width and height macros followed by the pixel array to w.
func (t *Texture) Encode(w io.Writer) error {
	lower, upper := cgen.Lower(t.Name), cgen.Upper(t.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "#define %s_WIDTH %d\n", upper, t.Width)
	fmt.Fprintf(&b, "#define %s_HEIGHT %d\n\n", upper, t.Height)
	fmt.Fprintf(&b, "unsigned int %s[%s_WIDTH*%s_HEIGHT] = {\n", lower, upper, upper)
	b.WriteString(cgen.HexList(t.Pixels))
	b.WriteString("\n};\n")

	_, err := io.WriteString(w, b.String())
	return err
}
