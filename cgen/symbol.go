package cgen

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of file without its final extension. A leading
// dot is part of the name, not an extension separator.
func Stem(file string) string {
	base := filepath.Base(file)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return strings.TrimSuffix(base, ext)
}

// Lower returns the symbol used for values such as arrays and structs.
func Lower(name string) string {
	return strings.ToLower(name)
}

// Upper returns the symbol used for macros and include guards.
func Upper(name string) string {
	return strings.ToUpper(name)
}

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
