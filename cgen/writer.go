package cgen

import (
	"io"
	"strconv"
	"strings"
)

// Unsigned is the set of element types that can be written as a hex list.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

type encoder struct {
	b      strings.Builder
	column int
}

func (e *encoder) entry(v uint64, last bool) {
	s := "0x" + strconv.FormatUint(v, 16)

	// The width accounts for the ", " separator even though a wrapped line
	// drops the trailing space
	width := len(s)
	if !last {
		width += 2
	}

	switch {
	case e.column == Indent:
	case e.column+width >= MaxColumn:
		e.b.WriteString("\n")
		e.b.WriteString(strings.Repeat(" ", Indent))
		e.column = Indent
	default:
		e.b.WriteString(" ")
	}

	e.b.WriteString(s)
	if !last {
		e.b.WriteString(",")
	}
	e.column += width
}

// HexList returns the values formatted as the body of a C initializer list,
// without the enclosing braces or a trailing newline.
func HexList[T Unsigned](values []T) string {
	e := encoder{column: Indent}
	e.b.WriteString(strings.Repeat(" ", Indent))
	for i, v := range values {
		e.entry(uint64(v), i == len(values)-1)
	}
	return e.b.String()
}

// WriteHexList writes the values to w formatted as the body of a C
// initializer list.
func WriteHexList[T Unsigned](w io.Writer, values []T) error {
	_, err := io.WriteString(w, HexList(values))
	return err
}
