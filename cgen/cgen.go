/*
Package cgen implements the small amount of C source generation shared by the
map and texture generators.

Arrays are written as a comma-separated list of lowercase hexadecimal
literals, indented by four spaces and wrapped so that no line reaches column
79, leaving column 80 for the line feed.
*/
package cgen

const (
	// Indent is the number of spaces used to indent array entries
	Indent = 4
	// MaxColumn is the column an array line must never reach
	MaxColumn = 79
)
